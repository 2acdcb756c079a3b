package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Destination struct {
	ID                 string      `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name               string      `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Country            string      `json:"country" bson:"country" validate:"required,max=100"`
	Description        string      `json:"description" bson:"description" validate:"required,max=5000"`
	Image              string      `json:"image" bson:"image" validate:"required,url"`
	Rating             float64     `json:"rating" bson:"rating" validate:"min=0,max=5"`
	HotelCount         int         `json:"hotelCount" bson:"hotel_count" validate:"min=0"`
	PopularAttractions Attractions `json:"popularAttractions" bson:"popular_attractions" validate:"max=50,dive,required,max=200"`
	Climate            string      `json:"climate,omitempty" bson:"climate,omitempty" validate:"max=200"`
	BestTimeToVisit    string      `json:"bestTimeToVisit,omitempty" bson:"best_time_to_visit,omitempty" validate:"max=200"`
	CreatedAt          time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time   `json:"updatedAt" bson:"updated_at"`
}

// Attractions decodes from either a JSON array or a comma separated string.
type Attractions []string

func (a *Attractions) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	out := Attractions{}
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*a = out
	return nil
}
