package composer

import (
	"html/template"

	"github.com/tenant-site-server/internal/models"
)

// basePage carries everything the shared page scaffolding needs
type basePage struct {
	ProjectID       string
	BusinessName    string
	Title           string
	MetaDescription string
	OGImage         string
	PrimaryColor    template.CSS
	ThemeSeed       string
	BasePath        string
	HeadContent     template.HTML
	Header          template.HTML
	Footer          template.HTML
}

// indexPage is the data for the blog index template
type indexPage struct {
	basePage
	Posts        []*models.BlogPost
	Categories   []*models.BlogCategory
	Tags         []string
	Query        string
	CategorySlug string
	Tag          string
	ActiveFilter string
	Filtered     bool
}

// postPage is the data for the single post template
type postPage struct {
	basePage
	Post    *models.BlogPost
	Lede    string
	Content template.HTML
	Related []*models.BlogPost
}

// notFoundPage is the data for the generic tenant-miss page
type notFoundPage struct {
	Host string
}

var pageTemplates = template.Must(
	template.New("pages").
		Funcs(template.FuncMap{
			"fmtdate": fmtDate,
			"take":    take,
		}).
		Parse(sharedTmpl + indexTmpl + postTmpl + notFoundTmpl),
)

// sharedTmpl defines the scaffolding both composed page types wrap
// themselves in: the document head (tenant head content first, then our
// title/meta and the theme stylesheet), the tenant header, and at the
// bottom the tenant footer, the floating theme toggle, and the scripts.
const sharedTmpl = `
{{define "pageTop"}}<!DOCTYPE html>
<html lang="en" data-theme="{{.ThemeSeed}}">
<head>
{{.HeadContent}}
<title>{{.Title}}</title>
{{if .MetaDescription}}<meta name="description" content="{{.MetaDescription}}">
{{end}}<meta property="og:title" content="{{.Title}}">
{{if .MetaDescription}}<meta property="og:description" content="{{.MetaDescription}}">
{{end}}{{if .OGImage}}<meta property="og:image" content="{{.OGImage}}">
{{end}}<meta name="viewport" content="width=device-width, initial-scale=1">
<style>:root{--vp-accent:{{.PrimaryColor}};}</style>
<style>` + pageCSS + `</style>
</head>
<body class="vp-body">
{{.Header}}
<main class="vp-main">
{{end}}

{{define "pageBottom"}}</main>
{{.Footer}}
<button id="vp-theme-toggle" class="vp-theme-toggle" type="button" data-project="{{.ProjectID}}" aria-label="Toggle theme">
<span class="vp-toggle-light">&#9728;</span><span class="vp-toggle-dark">&#9790;</span>
</button>
<script>` + themeScript + `</script>
</body>
</html>
{{end}}
`

const indexTmpl = `
{{define "index"}}{{template "pageTop" .}}
<div class="vp-shell">
<section class="vp-blog-head">
<h1>Blog</h1>
<form class="vp-search" method="get" action="{{.BasePath}}/blog">
<input type="search" name="q" value="{{.Query}}" placeholder="Search posts&hellip;" aria-label="Search posts">
{{if .CategorySlug}}<input type="hidden" name="category" value="{{.CategorySlug}}">{{end}}
{{if .Tag}}<input type="hidden" name="tag" value="{{.Tag}}">{{end}}
<button type="submit">Search</button>
</form>
</section>
{{if .Categories}}<nav class="vp-chips" aria-label="Categories">
<a class="vp-chip{{if not .CategorySlug}} vp-chip-active{{end}}" href="{{.BasePath}}/blog">All</a>
{{range .Categories}}<a class="vp-chip{{if eq .Slug $.CategorySlug}} vp-chip-active{{end}}" href="{{$.BasePath}}/blog?category={{.Slug}}">{{.Name}} <span class="vp-chip-count">{{.PostCount}}</span></a>
{{end}}</nav>
{{end}}{{if .ActiveFilter}}<p class="vp-active-filter">{{.ActiveFilter}} &mdash; <a href="{{.BasePath}}/blog">clear filters</a></p>
{{end}}{{if .Posts}}<section class="vp-grid">
{{range .Posts}}<article class="vp-card">
{{if .CoverImage}}<a href="{{$.BasePath}}/blog/{{.Slug}}"><img class="vp-card-cover" src="{{.CoverImage}}" alt="" loading="lazy"></a>
{{end}}<div class="vp-card-body">
{{if .Category}}<span class="vp-card-category">{{.Category.Name}}</span>
{{end}}<h2 class="vp-card-title"><a href="{{$.BasePath}}/blog/{{.Slug}}">{{.Title}}</a></h2>
{{if .Excerpt}}<p class="vp-card-excerpt">{{.Excerpt}}</p>
{{end}}<div class="vp-card-meta">
<time>{{fmtdate .PublishedAt}}</time>
{{range take 3 .TagList}}<a class="vp-tag" href="{{$.BasePath}}/blog?tag={{.}}">#{{.}}</a>{{end}}
</div>
</div>
</article>
{{end}}</section>
{{else}}<section class="vp-empty">
{{if .Filtered}}<p>No posts match your filters.</p>
<p><a href="{{.BasePath}}/blog">Clear filters</a></p>
{{else}}<p>No posts published yet. Check back soon.</p>
{{end}}</section>
{{end}}{{if .Tags}}<section class="vp-tag-cloud" aria-label="All tags">
{{range .Tags}}<a class="vp-tag{{if eq . $.Tag}} vp-tag-active{{end}}" href="{{$.BasePath}}/blog?tag={{.}}">#{{.}}</a>
{{end}}</section>
{{end}}</div>
{{template "pageBottom" .}}{{end}}
`

const postTmpl = `
{{define "post"}}{{template "pageTop" .}}
<div class="vp-shell vp-post-shell">
<article class="vp-post">
<header class="vp-post-head">
{{if .Post.Category}}<a class="vp-post-category" href="{{.BasePath}}/blog?category={{.Post.Category.Slug}}">{{.Post.Category.Name}}</a>
{{end}}<time class="vp-post-date">{{fmtdate .Post.PublishedAt}}</time>
<h1 class="vp-post-title">{{.Post.Title}}</h1>
{{if .Lede}}<p class="vp-post-lede">{{.Lede}}</p>
{{end}}</header>
{{if .Post.CoverImage}}<img class="vp-post-cover" src="{{.Post.CoverImage}}" alt="">
{{end}}<div class="vp-post-content">{{.Content}}</div>
<footer class="vp-post-foot">
{{if .Post.TagList}}<div class="vp-post-tags">
{{range .Post.TagList}}<a class="vp-tag" href="{{$.BasePath}}/blog?tag={{.}}">#{{.}}</a>
{{end}}</div>
{{end}}<div class="vp-share" aria-label="Share this post">
<span class="vp-share-label">Share</span>
<button type="button" class="vp-share-btn" data-share="twitter">X</button>
<button type="button" class="vp-share-btn" data-share="facebook">Facebook</button>
<button type="button" class="vp-share-btn" data-share="linkedin">LinkedIn</button>
<button type="button" class="vp-share-btn" data-share="copy">Copy link</button>
</div>
</footer>
</article>
{{if .Related}}<aside class="vp-related">
<h2>More from the blog</h2>
<ul>
{{range .Related}}<li><a href="{{$.BasePath}}/blog/{{.Slug}}">{{.Title}}</a><time>{{fmtdate .PublishedAt}}</time></li>
{{end}}</ul>
</aside>
{{end}}<p class="vp-back"><a href="{{.BasePath}}/blog">&larr; Back to all posts</a></p>
</div>
<script>` + shareScript + `</script>
{{template "pageBottom" .}}{{end}}
`

const notFoundTmpl = `
{{define "notfound"}}<!DOCTYPE html>
<html lang="en">
<head>
<title>Site not found</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>` + notFoundCSS + `</style>
</head>
<body>
<main class="nf-wrap">
<p class="nf-code">404</p>
<h1>Site not found</h1>
<p class="nf-detail">There is no published site at <strong>{{.Host}}</strong>.</p>
</main>
</body>
</html>
{{end}}
`
