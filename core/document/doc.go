// Package document loads the environment, release and pulp-admin documents the
// release engineering workflows run against.
//
// Documents are looked up by name in the environments/, releases/ and pulp/
// sub-directories of each search root, in order; the first match wins. The
// default roots are $XDG_CONFIG_HOME/releng-sop and /etc/releng-sop.
//
//	environments/<name>.json   koji_profile, pdc_server, pulp_server
//	releases/<release_id>.json koji.tag_compose, koji.tag_release
//	pulp/<name>.conf           [server] host, [client] user, password
//
// Every failure is reported as a *ConfigError.
package document
