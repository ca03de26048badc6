package deployment

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeIPAddress(t *testing.T) {
	for range 100 {
		address := synthesizeIPAddress()

		require.True(t, strings.HasPrefix(address, "192.168."), address)
		ip := net.ParseIP(address)
		assert.NotNil(t, ip, address)
	}
}
