package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Redacted replaces the value of every attribute treated as a credential.
const Redacted = "[REDACTED]"

var authHeaderPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+$`)

// credentialFields are the attribute names upstream keys travel under: amap
// and nsmao take a "key" query parameter and callers pass it on as apiKey.
var credentialFields = []string{
	"key", "Key",
	"apiKey", "api_key",
	"authorization", "Authorization",
	"cookie",
}

// DefaultRedactOptions returns the masq options applied to every handler.
func DefaultRedactOptions() []masq.Option {
	opts := []masq.Option{
		masq.WithRedactMessage(Redacted),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(authHeaderPattern),
	}

	for _, name := range credentialFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return opts
}

// NewReplaceAttr returns a slog ReplaceAttr hook that redacts credentials,
// extended by opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
