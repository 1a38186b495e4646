package business

import (
	"encoding/json"

	"grabgood/apperr"
	"grabgood/models"

	"go.mongodb.org/mongo-driver/bson"
)

// validateCreate checks the required fields of a new business and returns
// field-level messages for anything missing.
func validateCreate(b *models.Business) map[string]string {
	fields := map[string]string{}
	if b.Name == "" {
		fields["name"] = "Name is required"
	}
	if !models.ValidBusinessType(b.Type) {
		fields["type"] = "Type must be restaurant, hotel, hall or sweetshop"
	}
	if b.Description == "" {
		fields["description"] = "Description is required"
	}
	if b.Location.Address == "" || b.Location.City == "" {
		fields["location"] = "Address and city are required"
	}
	if b.Contact.Phone == "" && b.Contact.Email == "" {
		fields["contact"] = "Phone or email is required"
	}
	if b.Capacity <= 0 {
		fields["capacity"] = "Capacity must be positive"
	}
	return fields
}

// patchableKeys are the top-level keys an owner may change through the
// generic update. Status, owner and availability go through their own
// endpoints.
var patchableKeys = map[string]bool{
	"name":         true,
	"description":  true,
	"location":     true,
	"contact":      true,
	"capacity":     true,
	"typeSpecific": true,
	"banner":       true,
}

// nestedKeys are flattened into dotted $set paths so omitted nested fields
// keep their stored values.
var nestedKeys = map[string]bool{
	"location":     true,
	"contact":      true,
	"typeSpecific": true,
}

// buildPatch converts a decoded JSON patch into a flat $set document.
func buildPatch(patch map[string]json.RawMessage) (bson.M, error) {
	update := bson.M{}
	for key, raw := range patch {
		if !patchableKeys[key] {
			return nil, apperr.Newf(apperr.ErrValidation, "field %q cannot be updated", key)
		}

		if !nestedKeys[key] {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, apperr.Newf(apperr.ErrValidation, "invalid value for %q", key)
			}
			update[key] = v
			continue
		}

		var nested map[string]any
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, apperr.Newf(apperr.ErrValidation, "invalid value for %q", key)
		}
		flatten(update, key, nested)
	}
	return update, nil
}

// flatten writes dotted paths for nested objects, leaving scalars and arrays
// as leaf values.
func flatten(out bson.M, prefix string, m map[string]any) {
	for k, v := range m {
		path := prefix + "." + k
		if child, ok := v.(map[string]any); ok {
			flatten(out, path, child)
			continue
		}
		out[path] = v
	}
}
