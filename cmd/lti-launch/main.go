// Command lti-launch sends a signed basic LTI launch to a tool provider
// endpoint. It exists as a working example of the library and as a quick way
// to exercise a provider during integration.
package main

import (
	"flag"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	lti "github.com/easygenerator/go-lti"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:9002/api/lti/1p0/assignment", "launch endpoint of the tool provider")
	key := flag.String("key", "61390", "oauth consumer key")
	secret := flag.String("secret", "testing1", "oauth consumer secret")
	flag.Parse()

	form := lti.Params{
		"lti_message_type":                 "basic-lti-launch-request",
		"lti_version":                      "LTI-1p0",
		"resource_link_id":                 uuid.NewString(),
		"resource_link_title":              "Assignment Title",
		"context_id":                       uuid.NewString(),
		"context_label":                    "DEMO-101",
		"user_id":                          uuid.NewString(),
		"roles":                            "Instructor",
		"lis_person_name_given":            "Unit",
		"lis_person_name_family":           "Test",
		"lis_person_name_full":             "Unit Test",
		"lis_person_contact_email_primary": "instructor@example.com",
		"custom_assignment_title":          "Demo Assignment",
	}

	request, err := lti.SignedFormRequest(*endpoint, *key, *secret, form)
	if err != nil {
		log.WithError(err).Fatal("signing launch request")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	response, err := client.Do(request)
	if err != nil {
		log.WithError(err).Fatal("sending launch request")
	}
	defer response.Body.Close()

	body, _ := io.ReadAll(response.Body)
	log.WithFields(log.Fields{
		"status": response.StatusCode,
		"body":   string(body),
	}).Info("launch response")
}
