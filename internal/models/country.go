package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Country is a read-only reference record from the countries collection.
type Country struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	TopLevelDomain []string           `json:"topLevelDomain" bson:"topLevelDomain"`
	Alpha2Code     string             `json:"alpha2Code" bson:"alpha2Code"`
	Alpha3Code     string             `json:"alpha3Code" bson:"alpha3Code"`
	CallingCodes   []string           `json:"callingCodes" bson:"callingCodes"`
	Capital        string             `json:"capital" bson:"capital"`
	AltSpellings   []string           `json:"altSpellings" bson:"altSpellings"`
	Subregion      string             `json:"subregion" bson:"subregion"`
	Region         string             `json:"region" bson:"region"`
	Population     int64              `json:"population" bson:"population"`
	LatLng         []float64          `json:"latlng" bson:"latlng"`
	Demonym        string             `json:"demonym" bson:"demonym"`
	Area           float64            `json:"area" bson:"area"`
	Timezones      []string           `json:"timezones" bson:"timezones"`
	Borders        []string           `json:"borders" bson:"borders"`
	NativeName     string             `json:"nativeName" bson:"nativeName"`
	NumericCode    string             `json:"numericCode" bson:"numericCode"`
	Flags          Flags              `json:"flags" bson:"flags"`
	Currencies     []Currency         `json:"currencies" bson:"currencies"`
	Languages      []Language         `json:"languages" bson:"languages"`
	Flag           string             `json:"flag" bson:"flag"`
	Independent    bool               `json:"independent" bson:"independent"`
}

type Flags struct {
	SVG string `json:"svg" bson:"svg"`
	PNG string `json:"png" bson:"png"`
}

type Currency struct {
	Code   string `json:"code" bson:"code"`
	Name   string `json:"name" bson:"name"`
	Symbol string `json:"symbol" bson:"symbol"`
}

type Language struct {
	ISO639_1   string `json:"iso639_1" bson:"iso639_1"`
	ISO639_2   string `json:"iso639_2" bson:"iso639_2"`
	Name       string `json:"name" bson:"name"`
	NativeName string `json:"nativeName" bson:"nativeName"`
}
