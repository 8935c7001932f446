package lti

import (
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// buildBaseString assembles the canonical base string for signing: the
// uppercased method, the escaped base URL and the escaped sorted parameter
// pairs, joined with "&". Every entry of every supplied set is included
// except oauth_signature; duplicate names across sets are all kept. Identical
// inputs always produce an identical base string regardless of the order
// parameters were set in.
func buildBaseString(method string, u *url.URL, sets ...Params) string {
	var pairs []pair
	for _, set := range sets {
		for name, value := range set {
			if name == SignatureParameter {
				continue
			}
			pairs = append(pairs, pair{escape(name), escape(value)})
		}
	}
	sortEncodedPairs(pairs)

	encoded := make([]string, len(pairs))
	for i, p := range pairs {
		encoded[i] = p.name + "=" + p.value
	}
	joined := strings.Join(encoded, "&")

	baseString := strings.ToUpper(method) + "&" + escape(baseURL(u)) + "&" + escape(joined)

	log.WithFields(log.Fields{"base_string": baseString}).Debug("signature base string built")

	return baseString
}

// baseURL reduces u to scheme://host[:port]/path with the query string and
// fragment stripped. Scheme and host are lowercased and a port that is the
// default for the scheme is dropped.
func baseURL(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())

	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}
	if port != "" {
		host += ":" + port
	}

	return scheme + "://" + host + u.Path
}
