package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"hotel_id",
			"user_id",
			"check_in",
			"check_out",
			"number_of_guests",
			"total_price",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"hotel_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 128,
			},

			"check_in": bson.M{
				"bsonType": "date",
			},

			"check_out": bson.M{
				"bsonType": "date",
			},

			"number_of_guests": bson.M{
				"bsonType": bson.A{"int", "long"},
				"minimum":  1,
				"maximum":  50,
			},

			"total_price": bson.M{
				"bsonType": bson.A{"double", "int", "long"},
				"minimum":  0,
			},

			"status": bson.M{
				"enum": bson.A{"pending", "approved", "completed", "rejected", "cancelled"},
			},

			"user_rating": bson.M{
				"bsonType": bson.A{"int", "long"},
				"minimum":  1,
				"maximum":  5,
			},

			"rated_at": bson.M{
				"bsonType": "date",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var BookingLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "expires_at"},
		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},
			"expires_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
