package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"grabgood/db"
	"grabgood/models"
	"grabgood/rdx"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var eventCategories = map[string]string{
	"booking-created":         models.NotifCategoryBooking,
	"booking-status-updated":  models.NotifCategoryBooking,
	"booking-cancelled":       models.NotifCategoryBooking,
	"business-created":        models.NotifCategoryBusiness,
	"business-status-updated": models.NotifCategoryBusiness,
	"payment-updated":         models.NotifCategoryPayment,
	"settings-updated":        models.NotifCategorySystem,
	"user-status-updated":     models.NotifCategorySystem,
}

// StartNotificationWorker subscribes to the event channel and stores an
// in-app notification for every recipient whose preferences allow it.
func StartNotificationWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[mq] notification worker listening")

	for msg := range ch {
		var evt models.Event
		if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
			log.Printf("[mq] bad event payload: %v", err)
			continue
		}
		handleEvent(ctx, evt)
	}
}

func handleEvent(ctx context.Context, evt models.Event) {
	category, ok := eventCategories[evt.Name]
	if !ok {
		return
	}

	seen := map[string]bool{}
	for _, recipient := range []string{evt.UserID, evt.OwnerID} {
		if recipient == "" || seen[recipient] {
			continue
		}
		seen[recipient] = true

		if !allowsInApp(ctx, recipient, category) {
			continue
		}

		notif := models.Notification{
			NotificationID: "n" + uuid.NewString(),
			UserID:         recipient,
			Category:       category,
			Title:          evt.Name,
			Message:        evt.Message,
			EntityType:     evt.EntityType,
			EntityID:       evt.EntityID,
			Read:           false,
			CreatedAt:      time.Now(),
		}
		if _, err := db.NotificationCollection.InsertOne(ctx, notif); err != nil {
			log.Printf("[mq] store notification for %s: %v", recipient, err)
		}
	}
}

func allowsInApp(ctx context.Context, userID, category string) bool {
	var prefs models.NotificationPreference
	err := db.PreferencesCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		prefs = models.DefaultNotificationPreference(userID)
	} else if err != nil {
		log.Printf("[mq] load preferences for %s: %v", userID, err)
		return true
	}
	return prefs.WantsInApp(category)
}
