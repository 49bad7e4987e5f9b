package handlers

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/launchkit/site/config"
	"github.com/launchkit/site/local"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

func HandleSitemap(c *fiber.Ctx) error {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{
				Loc:        config.BaseURL + "/",
				LastMod:    local.GetRenderTime(c).Format(time.DateOnly),
				ChangeFreq: "monthly",
				Priority:   "1.0",
			},
		},
	}

	return c.XML(sitemap)
}
