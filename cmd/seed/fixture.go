package main

import (
	_ "embed"
	"fmt"
	"staybook/pkg/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultFixture []byte

type fixture struct {
	Destinations []destinationSeed `yaml:"destinations"`
}

type destinationSeed struct {
	Name               string      `yaml:"name"`
	Country            string      `yaml:"country"`
	Description        string      `yaml:"description"`
	Image              string      `yaml:"image"`
	Rating             float64     `yaml:"rating"`
	Climate            string      `yaml:"climate"`
	BestTimeToVisit    string      `yaml:"bestTimeToVisit"`
	PopularAttractions []string    `yaml:"popularAttractions"`
	Hotels             []hotelSeed `yaml:"hotels"`
}

type hotelSeed struct {
	Name               string       `yaml:"name"`
	Price              float64      `yaml:"price"`
	DiscountPercentage float64      `yaml:"discountPercentage"`
	Rating             float64      `yaml:"rating"`
	Image              string       `yaml:"image"`
	Location           string       `yaml:"location"`
	Description        string       `yaml:"description"`
	Amenities          []string     `yaml:"amenities"`
	Rooms              []model.Room `yaml:"rooms"`
}

func parseFixture(data []byte) (*fixture, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	if len(f.Destinations) == 0 {
		return nil, fmt.Errorf("seed fixture has no destinations")
	}
	return &f, nil
}

func (d destinationSeed) destination() *model.Destination {
	return &model.Destination{
		Name:               d.Name,
		Country:            d.Country,
		Description:        d.Description,
		Image:              d.Image,
		Rating:             d.Rating,
		HotelCount:         len(d.Hotels),
		PopularAttractions: model.Attractions(d.PopularAttractions),
		Climate:            d.Climate,
		BestTimeToVisit:    d.BestTimeToVisit,
	}
}

func (h hotelSeed) hotel(destinationID string) *model.Hotel {
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	rooms := h.Rooms
	if rooms == nil {
		rooms = []model.Room{}
	}
	return &model.Hotel{
		Name:               h.Name,
		Price:              h.Price,
		DiscountPercentage: h.DiscountPercentage,
		Rating:             h.Rating,
		Image:              h.Image,
		Location:           h.Location,
		Description:        h.Description,
		DestinationID:      destinationID,
		Amenities:          amenities,
		Rooms:              rooms,
	}
}
