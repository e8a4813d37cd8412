package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/neexbeast/goa-trips/internal/travel"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Pointer fields distinguish an absent attribute from an empty one:
// "required" rejects nil but accepts "" and [].

type createDestinationRequest struct {
	Name        *string  `json:"name" validate:"required"`
	Location    *string  `json:"location" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Image       *string  `json:"image" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
	Activities  []string `json:"activities" validate:"required"`
	BestTime    *string  `json:"bestTime" validate:"required"`
	Price       *string  `json:"price" validate:"required"`
}

func (req createDestinationRequest) input() travel.DestinationInput {
	return travel.DestinationInput{
		Name:        *req.Name,
		Location:    *req.Location,
		Description: *req.Description,
		Image:       *req.Image,
		Rating:      *req.Rating,
		Activities:  req.Activities,
		BestTime:    *req.BestTime,
		Price:       *req.Price,
	}
}

type createItineraryRequest struct {
	TripName     *string  `json:"tripName" validate:"required"`
	StartDate    *string  `json:"startDate" validate:"required"`
	EndDate      *string  `json:"endDate" validate:"required"`
	Destinations []string `json:"destinations" validate:"required"`
	Budget       *string  `json:"budget"`
}

func (req createItineraryRequest) input() travel.ItineraryInput {
	in := travel.ItineraryInput{
		TripName:     *req.TripName,
		StartDate:    *req.StartDate,
		EndDate:      *req.EndDate,
		Destinations: req.Destinations,
	}
	if req.Budget != nil {
		in.Budget = *req.Budget
	}
	return in
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// decodeRequest decodes the JSON body into dst and validates it. The error
// text is fit for the client.
func decodeRequest(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := v.Struct(dst); err != nil {
		return errors.New(formatValidationError(err))
	}

	return nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
