// Package client renders the browser-facing pages of the web
// service and serves their static resources.
package client

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

/*

Common client settings

*/

const (
	brandName               = "Résolution"
	templatePageSuffix      = "Page.tmpl.html"
	templateDirectoryEnvVar = "TEMPLATE_DIRECTORY"
	staticDirectoryEnvVar   = "STATIC_DIRECTORY"
	iconPath                = "/favicon.ico"
)

var log = logrus.New()

var (
	defaultStaticDirectory   = "static"
	defaultTemplateDirectory = filepath.Join("static", "tmpl")
	staticResourcePaths      = map[string]string{
		iconPath:      filepath.Join("special", "favicon.ico"),
		"/robots.txt": filepath.Join("special", "robots.txt"),
	}
)

// VerifyResources checks that the resource directories exist and
// the pages parse, so a bad deployment fails at startup rather
// than on a user's first request.
func VerifyResources() error {
	if fi, err := os.Stat(findStaticDirectory()); err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("Static resource location %q is not a directory", findStaticDirectory())
	}
	if fi, err := os.Stat(findTemplateDirectory()); err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("Template resource location %q is not a directory", findTemplateDirectory())
	}
	for _, name := range []string{"solver", "error"} {
		if _, err := loadPageTemplate(name); err != nil {
			return fmt.Errorf("Couldn't load the %q template: %v", name, err)
		}
	}
	return nil
}

/*

handle static resources

*/

func findStaticDirectory() string {
	if dir := os.Getenv(staticDirectoryEnvVar); dir != "" {
		return dir
	}
	return defaultStaticDirectory
}

// StaticHandler serves the request if it names a known static
// resource, and reports whether it did.
func StaticHandler(w http.ResponseWriter, r *http.Request) bool {
	path, ok := staticResourcePaths[r.URL.Path]
	if ok {
		log.Debugf("Serving static resource for %q.", r.URL.Path)
		http.ServeFile(w, r, filepath.Join(findStaticDirectory(), path))
	}
	return ok
}

/*

find and parse templates

*/

func findTemplateDirectory() string {
	if dir := os.Getenv(templateDirectoryEnvVar); dir != "" {
		return dir
	}
	return defaultTemplateDirectory
}

// loadedTemplates is the cache of already-parsed templates
var loadedTemplates = make(map[string]*template.Template)

// loadPageTemplate finds, parses, and caches the page template
// with the given name.
func loadPageTemplate(name string) (*template.Template, error) {
	if tmpl, ok := loadedTemplates[name]; ok {
		return tmpl, nil
	}
	fp := filepath.Join(findTemplateDirectory(), name+templatePageSuffix)
	tmpl, err := template.ParseFiles(fp)
	if err != nil {
		return nil, err
	}
	loadedTemplates[name] = tmpl
	return tmpl, nil
}
