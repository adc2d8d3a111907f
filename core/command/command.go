package command

import (
	"strings"

	"releng-sop/core/document"
	"releng-sop/core/reconcile"
)

const (
	// KojiProgram is the build system client.
	KojiProgram = "koji"
	// PulpAdminProgram is the content delivery client.
	PulpAdminProgram = "pulp-admin"
	// NoopProgram prefixes commands that must only be echoed.
	NoopProgram = "echo"
)

// Invocation is an external command in two forms.
// Exec is what runs; Print is what may be shown or logged and never carries a credential.
type Invocation struct {
	Exec  []string `json:"-"`
	Print []string `json:"command"`
}

// String renders the printable form.
func (i Invocation) String() string {
	return strings.Join(i.Print, " ")
}

// CloneTag builds the koji invocation cloning every package of src into dst.
// Without commit, koji runs in its own test mode.
func CloneTag(profile, src, dst string, commit bool) Invocation {
	args := []string{
		KojiProgram,
		"--profile=" + profile,
		"clone-tag",
		"--verbose",
		src,
		dst,
	}
	if !commit {
		args = append(args, "--test")
	}
	return Invocation{Exec: args, Print: clone(args)}
}

// ClearRepo builds the pulp-admin invocation removing every RPM from repo.
// The password is only added to Exec, and only when committing.
func ClearRepo(pulp *document.PulpAdmin, repo, password string, commit bool) Invocation {
	tail := []string{"rpm", "repo", "remove", "rpm", "--filters={}", "--repo-id", repo}
	return pulpAdmin(pulp, password, commit, tail, nil)
}

// CloneRepo builds the pulp-admin invocation cloning pair.From into pair.To.
// Without commit the invocation is prefixed with echo so running it is harmless.
func CloneRepo(pulp *document.PulpAdmin, pair reconcile.Pair, password string, commit bool) Invocation {
	tail := []string{"repo", "clone", "--id=" + pair.From, "--clone_id=" + pair.To}
	var prefix []string
	if !commit {
		prefix = []string{NoopProgram}
	}
	return pulpAdmin(pulp, password, commit, tail, prefix)
}

func pulpAdmin(pulp *document.PulpAdmin, password string, commit bool, tail, prefix []string) Invocation {
	head := append(clone(prefix),
		PulpAdminProgram,
		"--config="+pulp.Path,
		"--user="+pulp.User,
	)

	printed := append(clone(head), tail...)

	executed := clone(head)
	if commit && password != "" {
		executed = append(executed, "--password="+password)
	}
	executed = append(executed, tail...)

	return Invocation{Exec: executed, Print: printed}
}

func clone(args []string) []string {
	return append([]string(nil), args...)
}
