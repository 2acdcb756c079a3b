package validators

import "go.mongodb.org/mongo-driver/bson"

var DestinationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"country",
			"description",
			"image",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},
			"country": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},
			"description": bson.M{
				"bsonType": "string",
			},
			"image": bson.M{
				"bsonType": "string",
			},
			"rating": bson.M{
				"bsonType": bson.A{"double", "int", "long"},
				"minimum":  0,
				"maximum":  5,
			},
			"hotel_count": bson.M{
				"bsonType": bson.A{"int", "long"},
				"minimum":  0,
			},
			"popular_attractions": bson.M{
				"bsonType": bson.A{"array", "null"},
				"items": bson.M{
					"bsonType": "string",
				},
			},
		},
	},
}
