package validator

import (
	"errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"staybook/pkg/validation"
	"testing"
)

func TestValidate(t *testing.T) {
	v := NewDestinationValidator(logger.Discard())

	valid := func() *model.Destination {
		return &model.Destination{
			Name:        "Bali",
			Country:     "Indonesia",
			Description: "Island of the gods",
			Image:       "https://images.example.com/bali.jpg",
			Rating:      4.7,
		}
	}

	tests := []struct {
		name    string
		mutate  func(d *model.Destination)
		wantMsg string
	}{
		{"valid", func(d *model.Destination) {}, ""},
		{"one missing", func(d *model.Destination) { d.Country = "" }, "Missing required fields: country"},
		{"several missing", func(d *model.Destination) { d.Name, d.Image = "", "" }, "Missing required fields: name, image"},
		{"rating out of range", func(d *model.Destination) { d.Rating = 6 }, "Rating must be between 0 and 5"},
		{"bad image", func(d *model.Destination) { d.Image = "bali.jpg" }, "Image must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			err := v.Validate(d)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verrs validation.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("error = %v, want ValidationErrors", err)
			}
			if verrs[0].Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verrs[0].Message, tt.wantMsg)
			}
		})
	}
}
