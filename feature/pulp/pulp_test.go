package pulp_test

import (
	"releng-sop/core/document"
	"releng-sop/core/reconcile"
)

var (
	env = &document.Environment{
		Name:        "default",
		Path:        "/etc/releng-sop/environments/default.json",
		KojiProfile: "koji",
		PDCServer:   "https://pdc.example.com/rest_api/v1/",
		PulpServer:  "pulp-prod",
	}
	pulpAdmin = &document.PulpAdmin{
		Name: "pulp-prod",
		Path: "/etc/releng-sop/pulp/pulp-prod.conf",
		Host: "pulp.example.com",
		User: "admin",
	}
	f24 = &document.Release{ID: "fedora-24", Path: "/etc/releng-sop/releases/fedora-24.json", ComposeTag: "f24-compose", ReleaseTag: "f24"}
	f25 = &document.Release{ID: "fedora-25", Path: "/etc/releng-sop/releases/fedora-25.json", ComposeTag: "f25-compose", ReleaseTag: "f25"}
)

func repo(name, arch, variant, category string) reconcile.RepoRecord {
	return reconcile.RepoRecord{Name: name, Arch: arch, VariantUID: variant, ContentCategory: category}
}
