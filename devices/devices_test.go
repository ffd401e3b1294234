package devices

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"Sony DualShock 4", KindPlayStation},
		{"DualSense Wireless Controller", KindPlayStation},
		{"PLAYSTATION(R)3 Controller", KindPlayStation},
		{"ps5 controller", KindPlayStation},
		{"Xbox Wireless Controller", KindXbox},
		{"8BitDo Pro 2", KindXbox},
		{"", KindXbox},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DetectKind(tc.name))
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "xbox", KindXbox.String())
	require.Equal(t, "playstation", KindPlayStation.String())
	require.Equal(t, "unknown", KindUnknown.String())
}
