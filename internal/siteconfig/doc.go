// Package siteconfig implements the configuration resolution pipeline: the
// raw JSON document type with path-scoped access, the deep-merge engine used
// to layer overrides onto shipped defaults, and the priority loader that
// produces the effective configuration for a session.
package siteconfig
