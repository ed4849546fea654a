package picker

import (
	"errors"
	"fmt"

	"docdraft/internal/navigation"
)

var ErrUnknownCategory = errors.New("unknown picker category")

// Category is the draft attribute a picker collects.
type Category string

const (
	CategoryFile      Category = "file"
	CategoryFaculties Category = "faculties"
	CategorySubjects  Category = "subjects"
	CategoryLists     Category = "lists"
	CategoryImages    Category = "images"
	CategoryCover     Category = "cover"
)

var routes = map[Category]navigation.Route{
	CategoryFile:      navigation.RoutePickerFile,
	CategoryFaculties: navigation.RoutePickerFaculties,
	CategorySubjects:  navigation.RoutePickerSubjects,
	CategoryLists:     navigation.RoutePickerLists,
	CategoryImages:    navigation.RoutePickerImages,
	CategoryCover:     navigation.RoutePickerCover,
}

// ParseCategory maps a path segment to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := routes[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Route returns the screen route of the picker.
func (c Category) Route() navigation.Route { return routes[c] }

// IsCatalog reports whether the picker chooses identifiers from a remote catalog.
func (c Category) IsCatalog() bool {
	return c == CategoryFaculties || c == CategorySubjects || c == CategoryLists
}
