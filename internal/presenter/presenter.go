// Package presenter shapes stored aggregates into API responses.
package presenter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

type DisplayPost struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Author           string           `json:"author"`
	Content          string           `json:"content"`
	MainImage        string           `json:"mainImage"`
	AdditionalImages []string         `json:"additionalImages"`
	Country          PostCountry      `json:"country"`
	City             string           `json:"city"`
	Likes            []string         `json:"likes"`
	Comments         []DisplayComment `json:"comments"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// PostCountry is the country as embedded in a post. A post whose country
// no longer resolves renders it as {}.
type PostCountry struct {
	Name        string   `json:"name"`
	Flag        string   `json:"flag"`
	Population  int64    `json:"population"`
	Region      string   `json:"region"`
	Subregion   string   `json:"subregion"`
	Alfa3Code   string   `json:"alfa3Code"`
	NativeName  string   `json:"nativeName"`
	Capital     string   `json:"capital"`
	Currencies  []string `json:"currencies"`
	Languages   []string `json:"languages"`
	Area        float64  `json:"area"`
	Independent bool     `json:"independent"`
	NumericCode string   `json:"numericCode"`

	resolved bool
}

func (c PostCountry) MarshalJSON() ([]byte, error) {
	if !c.resolved {
		return []byte("{}"), nil
	}
	type plain PostCountry
	return json.Marshal(plain(c))
}

type DisplayComment struct {
	ID        string    `json:"_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CountryDetails is the catalog listing shape. Unlike PostCountry, its
// multi-valued fields are joined into comma separated text.
type CountryDetails struct {
	Name            string   `json:"name"`
	Alfa3Code       string   `json:"alfa3Code"`
	NativeName      string   `json:"nativeName"`
	Population      string   `json:"population"`
	Region          string   `json:"region"`
	SubRegion       string   `json:"subRegion"`
	Capital         string   `json:"capital"`
	Flag            string   `json:"flag"`
	TopLevelDomain  string   `json:"topLevelDomain"`
	Currencies      string   `json:"currencies"`
	Languages       string   `json:"languages"`
	BorderCountries []string `json:"borderCountries"`
	Area            float64  `json:"area"`
	NumericCode     string   `json:"numericCode"`
	Independent     bool     `json:"independent"`
}

type UserPost struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Content   string          `json:"content"`
	Country   UserPostCountry `json:"country"`
	MainImage string          `json:"mainImage"`
}

type UserPostCountry struct {
	Name string `json:"name,omitempty"`
	Flag string `json:"flag,omitempty"`
}

func FormatPost(p models.PostWithCountry) DisplayPost {
	comments := make([]DisplayComment, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, FormatComment(c))
	}

	return DisplayPost{
		ID:               p.ID.Hex(),
		Title:            p.Title,
		Author:           p.Author,
		Content:          p.Content,
		MainImage:        p.MainImage,
		AdditionalImages: nonNil(p.AdditionalImages),
		Country:          postCountry(p.Country),
		City:             p.City,
		Likes:            nonNil(p.Likes),
		Comments:         comments,
		CreatedAt:        p.CreatedAt,
	}
}

func FormatPosts(posts []models.PostWithCountry) []DisplayPost {
	out := make([]DisplayPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, FormatPost(p))
	}
	return out
}

func FormatComment(c models.Comment) DisplayComment {
	return DisplayComment{
		ID:        c.ID.Hex(),
		Author:    c.Author,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func postCountry(c *models.Country) PostCountry {
	if c == nil {
		return PostCountry{}
	}

	currencies := make([]string, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		currencies = append(currencies, fmt.Sprintf("%s (%s)", cur.Name, cur.Symbol))
	}

	return PostCountry{
		Name:        c.Name,
		Flag:        c.Flags.PNG,
		Population:  c.Population,
		Region:      c.Region,
		Subregion:   c.Subregion,
		Alfa3Code:   c.Alpha3Code,
		NativeName:  c.NativeName,
		Capital:     c.Capital,
		Currencies:  currencies,
		Languages:   languageNames(c.Languages),
		Area:        c.Area,
		Independent: c.Independent,
		NumericCode: c.NumericCode,
		resolved:    true,
	}
}

func FormatCountry(c models.Country) CountryDetails {
	currencies := make([]string, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		currencies = append(currencies, cur.Name)
	}

	return CountryDetails{
		Name:            c.Name,
		Alfa3Code:       c.Alpha3Code,
		NativeName:      c.NativeName,
		Population:      printer.Sprintf("%d", c.Population),
		Region:          c.Region,
		SubRegion:       c.Subregion,
		Capital:         c.Capital,
		Flag:            c.Flag,
		TopLevelDomain:  strings.Join(c.TopLevelDomain, ", "),
		Currencies:      strings.Join(currencies, ", "),
		Languages:       strings.Join(languageNames(c.Languages), ", "),
		BorderCountries: nonNil(c.Borders),
		Area:            c.Area,
		NumericCode:     c.NumericCode,
		Independent:     c.Independent,
	}
}

func FormatCountries(countries []models.Country) []CountryDetails {
	out := make([]CountryDetails, 0, len(countries))
	for _, c := range countries {
		out = append(out, FormatCountry(c))
	}
	return out
}

func FormatUserPost(p models.PostWithCountry) UserPost {
	var country UserPostCountry
	if p.Country != nil {
		country = UserPostCountry{Name: p.Country.Name, Flag: p.Country.Flags.PNG}
	}
	return UserPost{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Author:    p.Author,
		Content:   p.Content,
		Country:   country,
		MainImage: p.MainImage,
	}
}

func FormatUserPosts(posts []models.PostWithCountry) []UserPost {
	out := make([]UserPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, FormatUserPost(p))
	}
	return out
}

func languageNames(langs []models.Language) []string {
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, l.Name)
	}
	return names
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
