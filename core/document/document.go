package document

import "fmt"

// Environment describes the services of one deployment (production, staging, ...).
type Environment struct {
	// Name is the logical environment name the document was looked up by.
	Name string `json:"name"`
	// Path is the resolved document path.
	Path string `json:"path"`
	// KojiProfile is the koji client profile name.
	KojiProfile string `json:"koji_profile"`
	// PDCServer is the base URL of the product definition center API.
	PDCServer string `json:"pdc_server"`
	// PulpServer is the name of the pulp-admin config to use.
	PulpServer string `json:"pulp_server"`
}

// Release describes the build tags of one release.
type Release struct {
	// ID is the PDC release id (e.g., "fedora-24").
	ID string `json:"id"`
	// Path is the resolved document path.
	Path string `json:"path"`
	// ComposeTag is the koji tag composes are built from.
	ComposeTag string `json:"tag_compose"`
	// ReleaseTag is the base koji tag of the release (e.g., "f24").
	ReleaseTag string `json:"tag_release"`
}

// PulpAdmin is a pulp-admin client configuration.
type PulpAdmin struct {
	// Name is the config name, usually the Environment's PulpServer.
	Name string `json:"name"`
	// Path is the resolved config path passed to pulp-admin --config.
	Path string `json:"path"`
	// Host is the pulp server host.
	Host string `json:"host"`
	// User is the pulp user.
	User string `json:"user"`
	// Password is the stored password, if any.
	Password string `json:"-"`
}

// Environment loads the named environment document.
func (l *Loader) Environment(name string) (*Environment, error) {
	v, path, err := l.read(KindEnvironment, name)
	if err != nil {
		return nil, err
	}
	if err := requireKeys(v, KindEnvironment, name, path, "koji_profile", "pdc_server", "pulp_server"); err != nil {
		return nil, err
	}

	return &Environment{
		Name:        name,
		Path:        path,
		KojiProfile: v.GetString("koji_profile"),
		PDCServer:   v.GetString("pdc_server"),
		PulpServer:  v.GetString("pulp_server"),
	}, nil
}

// Release loads the release document for a PDC release id.
func (l *Loader) Release(id string) (*Release, error) {
	v, path, err := l.read(KindRelease, id)
	if err != nil {
		return nil, err
	}
	if err := requireKeys(v, KindRelease, id, path, "koji.tag_compose", "koji.tag_release"); err != nil {
		return nil, err
	}

	return &Release{
		ID:         id,
		Path:       path,
		ComposeTag: v.GetString("koji.tag_compose"),
		ReleaseTag: v.GetString("koji.tag_release"),
	}, nil
}

// PulpAdmin loads the named pulp-admin config.
func (l *Loader) PulpAdmin(name string) (*PulpAdmin, error) {
	f, path, err := l.readINI(KindPulp, name)
	if err != nil {
		return nil, err
	}

	client := f.Section("client")
	user := client.Key("user").String()
	if user == "" {
		return nil, &ConfigError{
			Kind: KindPulp,
			Name: name,
			Path: path,
			Err:  fmt.Errorf("%w: client.user", ErrMissingKey),
		}
	}

	return &PulpAdmin{
		Name:     name,
		Path:     path,
		Host:     f.Section("server").Key("host").String(),
		User:     user,
		Password: client.Key("password").String(),
	}, nil
}
