package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressList(t *testing.T) {
	input := `
# resolvers
8.8.8.8
1.1.1.1   # cloudflare

2001:4860:4860::8888
dns.google
`

	entries, err := ParseAddressList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"8.8.8.8", "1.1.1.1", "2001:4860:4860::8888", "dns.google"}, entries)
}

func TestIsValidIP(t *testing.T) {
	assert.True(t, IsValidIP("8.8.8.8"))
	assert.True(t, IsValidIP(" 2001:db8::1 "))
	assert.False(t, IsValidIP("dns.google"))
	assert.False(t, IsValidIP("256.1.1.1"))
}
