// Package environment names the deployment environment and carries it through
// request contexts.
package environment
