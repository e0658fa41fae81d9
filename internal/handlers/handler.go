package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctor-api/internal/middleware"
)

// Store is the document database as the handlers see it. Every route runs
// at most one of these per request, plus the duplicate pre-check on bookings.
type Store interface {
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, collection string, doc bson.M) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (*mongo.DeleteResult, error)
	UpdateOne(ctx context.Context, collection string, filter, set bson.M) (*mongo.UpdateResult, error)
}

// TokenService issues the access tokens VerifyToken later checks.
type TokenService interface {
	middleware.TokenVerifier
	GenerateJWT(payload map[string]any) (string, error)
}

type Handler struct {
	Store  Store
	Tokens TokenService
}

func NewHandler(store Store, tokens TokenService) *Handler {
	return &Handler{
		Store:  store,
		Tokens: tokens,
	}
}

var errNotObject = errors.New("request body must be a JSON object")

// bindDocument reads the body as a schema-less document.
func bindDocument(c *gin.Context) (bson.M, error) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, errNotObject
	}
	return doc, nil
}

// idFilter turns the :id path parameter into an _id filter.
func idFilter(c *gin.Context) (bson.M, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return nil, false
	}
	return bson.M{"_id": id}, true
}

func serverError(c *gin.Context, msg string, err error) {
	log.Errorf("%s %s: %s: %v", c.Request.Method, c.FullPath(), msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func insertAck(res *mongo.InsertOneResult) gin.H {
	return gin.H{"acknowledged": true, "insertedId": res.InsertedID}
}

func deleteAck(res *mongo.DeleteResult) gin.H {
	return gin.H{"acknowledged": true, "deletedCount": res.DeletedCount}
}

func updateAck(res *mongo.UpdateResult) gin.H {
	return gin.H{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedCount": res.UpsertedCount,
		"upsertedId":    res.UpsertedID,
	}
}

// Retrieves a whole collection.
func (h *Handler) listAll(c *gin.Context, collection string) {
	docs, err := h.Store.Find(c.Request.Context(), collection, bson.M{})
	if err != nil {
		serverError(c, "Failed to retrieve "+collection, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) insert(c *gin.Context, collection string) {
	doc, err := bindDocument(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Store.InsertOne(c.Request.Context(), collection, doc)
	if err != nil {
		serverError(c, "Failed to insert into "+collection, err)
		return
	}
	c.JSON(http.StatusOK, insertAck(res))
}

func (h *Handler) deleteByID(c *gin.Context, collection string) {
	filter, ok := idFilter(c)
	if !ok {
		return
	}

	res, err := h.Store.DeleteOne(c.Request.Context(), collection, filter)
	if err != nil {
		serverError(c, "Failed to delete from "+collection, err)
		return
	}
	c.JSON(http.StatusOK, deleteAck(res))
}
