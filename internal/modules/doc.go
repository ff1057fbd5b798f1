// Package modules contains the self-contained feature areas of the site.
//
// Each subdirectory is a module implementing `module.Module`. Modules are
// listed in `internal/app/modules.go` and mounted by the server under
// "/" + Name(): chat under /chat and the admin CMS under /admin.
package modules
