// Package gateway is the External Data Gateway: one operation per third-party
// capability the homepage needs.
//
// Every operation performs exactly one outbound GET through a [clients.Client]
// and decodes the JSON body. Quote, geolocation and weather replies are
// returned as opaque [domain.Document] values, exactly as decoded. The random
// song reply is reshaped into [domain.PlaybackTrack] values.
//
// # Failure semantics
//
// [Gateway.FetchPlaylist] never fails: any transport error, non-2xx status,
// malformed JSON or non-conforming shape is logged at error level and an empty
// playlist is returned.
//
// Every other operation returns an error wrapping [domain.ErrUnavailable] for
// transport failures, non-2xx statuses and undecodable bodies. The original
// cause ([*clients.StatusError], [*json.SyntaxError], network errors) stays
// reachable through errors.As. Missing required parameters fail with
// [domain.ErrValidation] before any request is made.
//
// There is no retry, no caching and no fallback between providers.
package gateway
