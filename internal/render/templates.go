package render

import "html/template"

func pageTemplates() *template.Template {
	return template.Must(template.New("site").Parse(pageHTML))
}

const pageHTML = `
{{define "page"}}<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="theme-color" content="{{.ThemeColor}}">
<title>{{.Title}}</title>
<style>
{{.Theme}}
body{margin:0;font-family:system-ui,sans-serif;background:var(--color-bg);color:var(--color-text)}
section,nav,footer{padding:48px 24px;background:var(--section-bg);color:var(--section-body)}
h1,h2{color:var(--section-heading)}
a{color:var(--section-primary)}
nav{display:flex;gap:16px;align-items:center;padding:16px 24px}
nav a{text-decoration:none}
footer{text-align:center;font-size:.875rem}
.btn{display:inline-block;padding:10px 20px;border-radius:6px;text-decoration:none}
.btn-primary{background:var(--section-primary);color:#fff}
.btn-secondary{background:var(--section-secondary);color:#fff}
.block{margin:16px 24px}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:24px}
.card{padding:16px;border:1px solid rgba(0,0,0,.08);border-radius:8px}
.media{position:relative;display:inline-block}
</style>
</head>
<body>
<nav style="{{.Navbar.Style}}">
{{if .Navbar.Logo}}<img src="{{.Navbar.Logo}}" alt="{{.Navbar.Title}}" height="32">{{end}}
<strong>{{.Navbar.Title}}</strong>
{{range .Navbar.Items}}<a href="{{.Href}}">{{.Label}}</a>{{end}}
</nav>
<main>
{{range .Flow}}{{.}}{{end}}
</main>
<footer style="{{.Footer.Style}}">
<strong>{{.Footer.Title}}</strong>
{{if .Footer.Text}}<p>{{.Footer.Text}}</p>{{end}}
</footer>
</body>
</html>{{end}}

{{define "hero"}}<section id="hero" style="{{.Style}}">
{{if .BackgroundImage}}<img src="{{.BackgroundImage}}" alt="" width="100%">{{end}}
<h1>{{.Heading}}</h1>
{{if .Subheading}}<p>{{.Subheading}}</p>{{end}}
{{if .CTAText}}<a class="btn btn-primary" href="{{.CTALink}}">{{.CTAText}}</a>{{end}}
</section>{{end}}

{{define "metrics"}}<section id="metrics" style="{{.Style}}"><div class="cards">
{{range .Items}}<div class="card"><strong>{{.Value}}</strong><div>{{.Label}}</div></div>{{end}}
</div></section>{{end}}

{{define "highlights"}}<section id="highlights" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="cards">{{range .Items}}<div class="card"><h3>{{.Title}}</h3>{{if .Description}}<p>{{.Description}}</p>{{end}}</div>{{end}}</div>
</section>{{end}}

{{define "about"}}<section id="about" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>{{end}}
{{if .Image}}<img src="{{.Image}}" alt="" width="100%">{{end}}
</section>{{end}}

{{define "industries"}}<section id="industries" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="cards">{{range .Items}}<div class="card"><h3>{{.Title}}</h3>{{if .Description}}<p>{{.Description}}</p>{{end}}</div>{{end}}</div>
</section>{{end}}

{{define "services"}}<section id="services" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="cards">{{range .Items}}<div class="card">
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" width="100%">{{else if .Icon}}<span>{{.Icon}}</span>{{end}}
<h3>{{.Title}}</h3>{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>{{end}}</div>
</section>{{end}}

{{define "portfolio"}}<section id="portfolio" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="cards">{{range .Items}}<div class="card">
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" width="100%">{{end}}
<h3>{{.Title}}</h3>{{if .Description}}<p>{{.Description}}</p>{{end}}
{{if .Metrics}}<ul>{{range .Metrics}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .Link}}<a href="{{.Link}}">&rarr;</a>{{end}}
</div>{{end}}</div>
</section>{{end}}

{{define "testimonials"}}<section id="testimonials" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{range .Items}}<blockquote><p>{{.Quote}}</p>{{if .Attribution}}<cite>{{.Attribution}}</cite>{{end}}</blockquote>{{end}}
</section>{{end}}

{{define "team"}}<section id="team" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="cards">{{range .Members}}<div class="card">
{{if .Photo}}<img src="{{.Photo}}" alt="{{.Name}}" width="100%">{{end}}
<h3>{{.Name}}</h3>{{if .Role}}<p>{{.Role}}</p>{{end}}{{if .Bio}}<p>{{.Bio}}</p>{{end}}
</div>{{end}}</div>
</section>{{end}}

{{define "cta"}}<section id="cta" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{if .Subheading}}<p>{{.Subheading}}</p>{{end}}
{{if .CTAText}}<a class="btn btn-primary" href="{{.CTALink}}">{{.CTAText}}</a>{{end}}
</section>{{end}}

{{define "contact"}}<section id="contact" style="{{.Style}}">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{if .Email}}<p><a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
{{if .Phone}}<p><a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}
{{if .Address}}<p>{{.Address}}</p>{{end}}
{{range .Links}}<p><a href="{{.Href}}">{{.Label}}</a></p>{{end}}
</section>{{end}}

{{define "block-text"}}<div class="block" style="text-align:{{.Align}}"><p>{{.Text}}</p></div>{{end}}

{{define "block-button"}}<div class="block" style="text-align:{{.Align}}"><a class="btn btn-{{.Variant}}" href="{{.Link}}">{{.Text}}</a></div>{{end}}

{{define "block-image"}}<div class="block" style="text-align:{{.Align}}"><span class="media">
<img src="{{.Src}}" alt="{{.Alt}}" style="width:{{.Width}};height:{{.Height}};object-fit:{{.ObjectFit}}">
{{if .OverlayText}}<span style="{{.OverlayStyle}}">{{.OverlayText}}</span>{{end}}
</span></div>{{end}}

{{define "block-spacer"}}<div aria-hidden="true" style="height:{{.Height}}"></div>{{end}}
`
