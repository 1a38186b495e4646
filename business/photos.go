package business

import (
	"context"
	"net/http"
	"time"

	"grabgood/db"
	"grabgood/filemgr"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadPhoto handles POST /api/business/:id/photos (multipart form with a
// "photo" or "banner" file field).
func UploadPhoto(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	businessID := ps.ByName("id")

	var biz models.Business
	if err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": businessID}).Decode(&biz); err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}
	if biz.Owner != userID && role != models.RoleAdmin {
		utils.SendError(w, http.StatusForbidden, "You do not own this business")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	field, picType := "photo", filemgr.PicPhoto
	if probe, _, err := r.FormFile("photo"); err != nil {
		field, picType = "banner", filemgr.PicBanner
	} else {
		probe.Close()
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "No photo or banner file in request")
		return
	}
	defer file.Close()

	origName, thumbName, err := filemgr.SaveImageWithThumb(file, header, picType, 300)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{"updated_at": time.Now()}
	var push bson.M
	if picType == filemgr.PicBanner {
		update["banner"] = origName
	} else {
		push = bson.M{"photos": origName}
	}

	doc := bson.M{"$set": update}
	if push != nil {
		doc["$push"] = push
	}
	_, err = db.BusinessCollection.UpdateOne(context.TODO(), bson.M{"businessid": businessID}, doc)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	utils.SendResponse(w, http.StatusCreated, map[string]string{
		"file":  origName,
		"thumb": thumbName,
	}, "Photo uploaded")
}
