package catalog

import (
	"net/url"
	"strconv"
)

const (
	// ServicePulp selects repositories served by Pulp.
	ServicePulp = "pulp"
	// ContentFormatRPM selects RPM repositories.
	ContentFormatRPM = "rpm"
)

// Query filters content-delivery repositories.
// Empty fields are not sent; Arches and Variants match any of their values.
type Query struct {
	ReleaseID       string
	Service         string
	RepoFamily      string
	ContentFormat   string
	Arches          []string
	Variants        []string
	ContentCategory string
	// Shadow restricts to shadow (true) or regular (false) repositories when set.
	Shadow *bool
}

// PulpRPM returns the query the pulp workflows start from.
func PulpRPM(releaseID, repoFamily string, arches, variants []string) Query {
	return Query{
		ReleaseID:     releaseID,
		Service:       ServicePulp,
		RepoFamily:    repoFamily,
		ContentFormat: ContentFormatRPM,
		Arches:        arches,
		Variants:      variants,
	}
}

// WithShadow returns a copy of the query restricted by shadow flag.
func (q Query) WithShadow(shadow bool) Query {
	q.Shadow = &shadow
	return q
}

// Values encodes the query as PDC filter parameters.
// page_size=0 asks PDC for the whole result set in one response.
func (q Query) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	set("release_id", q.ReleaseID)
	set("service", q.Service)
	set("repo_family", q.RepoFamily)
	set("content_format", q.ContentFormat)
	set("content_category", q.ContentCategory)
	for _, arch := range q.Arches {
		values.Add("arch", arch)
	}
	for _, variant := range q.Variants {
		values.Add("variant_uid", variant)
	}
	if q.Shadow != nil {
		values.Set("shadow", strconv.FormatBool(*q.Shadow))
	}
	values.Set("page_size", "0")

	return values
}
