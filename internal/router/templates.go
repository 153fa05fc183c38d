package router

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"inkwell/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

// LoadTemplates assembles layouts + includes + each view into one renderer.
// Lives here rather than in main so the handler tests render the real pages.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"markdown": utils.RenderMarkdown,
		"timeAgo": func(t time.Time) string {
			seconds := int(time.Since(t).Seconds())
			switch {
			case seconds < 60:
				return "just now"
			case seconds < 3600:
				return fmt.Sprintf("%d minutes ago", seconds/60)
			case seconds < 86400:
				return fmt.Sprintf("%d hours ago", seconds/3600)
			default:
				return t.Format("January 2, 2006")
			}
		},
	}

	// Manual registration to ensure keys match handler expectation
	r.AddFromFilesFuncs("index.html", funcMap, assemble(templatesDir+"/views/index.html")...)
	r.AddFromFilesFuncs("about.html", funcMap, assemble(templatesDir+"/views/about.html")...)
	r.AddFromFilesFuncs("contact.html", funcMap, assemble(templatesDir+"/views/contact.html")...)
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	// Auth
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)

	// Post
	r.AddFromFilesFuncs("post/show.html", funcMap, assemble(templatesDir+"/views/post/show.html")...)
	r.AddFromFilesFuncs("post/make.html", funcMap, assemble(templatesDir+"/views/post/make.html")...)

	return r
}
