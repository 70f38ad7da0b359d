// Package devshell composes the development environment descriptor: the
// set of tool packages that must be present in an interactive shell for a
// platform. Provisioning the shell itself is the job of an external
// collaborator; this layer only resolves which packages it must install.
package devshell
