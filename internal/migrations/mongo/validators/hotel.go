package validators

import "go.mongodb.org/mongo-driver/bson"

var HotelValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"price",
			"image",
			"location",
			"description",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},

			"price": bson.M{
				"bsonType": bson.A{"double", "int", "long"},
				"minimum":  0,
			},

			"discount_percentage": bson.M{
				"bsonType": bson.A{"double", "int", "long"},
				"minimum":  0,
				"maximum":  100,
			},

			"rating": bson.M{
				"bsonType": bson.A{"double", "int", "long"},
				"minimum":  0,
				"maximum":  5,
			},

			"image": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"location": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 5000,
			},

			"destination_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"amenities": bson.M{
				"bsonType": bson.A{"array", "null"},
				"maxItems": 50,
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"rooms": bson.M{
				"bsonType": bson.A{"array", "null"},
				"maxItems": 50,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"type"},
					"properties": bson.M{
						"type":     bson.M{"bsonType": "string"},
						"price":    bson.M{"bsonType": bson.A{"double", "int", "long"}, "minimum": 0},
						"capacity": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
					},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
