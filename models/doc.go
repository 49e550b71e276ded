/*
Package models defines the data structures shared across coredata.

Key Types:

EntityDefinition:
Describes one REST-addressable entity within a kind:

	def := models.EntityDefinition{
	    Kind:    "root",
	    Name:    "media",
	    Plural:  "mediaItems",
	    BaseURL: "/wp/v2/media",
	}

Action:
The value dispatched to a store. Only the fields relevant to Type are set:

	models.AddEntities(defs)                      // ADD_ENTITIES
	models.Rehydrate("preferences", payload)      // REDUX_REHYDRATE
	models.Action{Type: models.ActionSerialize}   // SERIALIZE

These types carry JSON tags matching the REST and persisted formats.
*/
package models
