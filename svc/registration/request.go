package registration

import (
	"encoding/json"
	"strings"

	"github.com/classtym/campaign/svc/funnel"
)

// Wire names shared by every funnel.
const (
	FieldIPAddress   = "ip_address"
	FieldUTMSource   = "utm_source"
	FieldUTMCampaign = "utm_campaign"
	FieldUTMMedium   = "utm_medium"
)

// Request is one lead registration, independent of the funnel's wire names.
type Request struct {
	FullName     string
	MobileNumber string
	Email        string
	Subject      string
	IPAddress    string
	UTMSource    string
	UTMCampaign  string
	UTMMedium    string
}

// Wire renders the request with the funnel's field names. An empty IP is
// sent as null; empty UTM values are omitted.
func (r Request) Wire(f *funnel.Funnel) map[string]any {
	body := map[string]any{
		f.Fields.FullName:     r.FullName,
		f.Fields.MobileNumber: r.MobileNumber,
		f.Fields.Email:        r.Email,
		f.Fields.Subject:      r.Subject,
		FieldIPAddress:        nil,
	}
	if r.IPAddress != "" {
		body[FieldIPAddress] = r.IPAddress
	}
	for k, v := range map[string]string{
		FieldUTMSource:   r.UTMSource,
		FieldUTMCampaign: r.UTMCampaign,
		FieldUTMMedium:   r.UTMMedium,
	} {
		if v != "" {
			body[k] = v
		}
	}
	return body
}

// Submission is the decoded body of a registration POST, keyed by wire
// name. Non-string values are dropped: Datastar posts every client
// signal, including flags and nested objects.
type Submission map[string]string

func (s *Submission) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Submission, len(raw))
	for k, v := range raw {
		var str string
		if json.Unmarshal(v, &str) == nil {
			out[k] = str
		}
	}
	*s = out
	return nil
}

// Request maps the submission onto a Request using the funnel's field names.
func (s Submission) Request(f *funnel.Funnel) Request {
	get := func(key string) string {
		return strings.TrimSpace(s[key])
	}
	return Request{
		FullName:     get(f.Fields.FullName),
		MobileNumber: get(f.Fields.MobileNumber),
		Email:        get(f.Fields.Email),
		Subject:      get(f.Fields.Subject),
		IPAddress:    get(FieldIPAddress),
		UTMSource:    get(FieldUTMSource),
		UTMCampaign:  get(FieldUTMCampaign),
		UTMMedium:    get(FieldUTMMedium),
	}
}
