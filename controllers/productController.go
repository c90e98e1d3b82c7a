package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// GetProducts lists the catalog, optionally filtered by category or
// collection.
func GetProducts(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var (
			products []models.Product
			err      error
		)

		if category := ctx.Query("category"); category != "" {
			products, err = store.GetProductsByCategory(category)
		} else if collection := ctx.Query("collection"); collection != "" {
			products, err = store.GetProductsByCollection(collection)
		} else {
			products, err = store.GetAllProducts()
		}

		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
			return
		}
		ctx.JSON(http.StatusOK, products)
	}
}

func GetProduct(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		product, err := store.GetProduct(productID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
			}
			return
		}
		ctx.JSON(http.StatusOK, product)
	}
}

func CreateProduct(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var product models.Product
		if err := ctx.ShouldBindJSON(&product); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if err := store.CreateProduct(&product); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
			return
		}
		ctx.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		var update models.Product
		if err := ctx.ShouldBindJSON(&update); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		product, err := store.UpdateProduct(productID, &update)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
			}
			return
		}
		ctx.JSON(http.StatusOK, product)
	}
}

// getAWSUploader returns a configured S3 uploader.
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func uploadToS3(uploader *manager.Uploader, key, contentType string, body io.Reader) (string, error) {
	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}

// UploadProductImage stores a new catalog image in S3 and points the
// product at it.
func UploadProductImage(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		if _, err := store.GetProduct(productID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
			}
			return
		}

		file, err := ctx.FormFile("image")
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
			return
		}

		uploader, err := getAWSUploader()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
			return
		}

		f, err := file.Open()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to read file", err)
			return
		}
		defer f.Close()

		key := fmt.Sprintf("products/%d-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)
		url, err := uploadToS3(uploader, key, file.Header.Get("Content-Type"), f)
		if err != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
			return
		}

		if err := store.SetProductImage(productID, url); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to save image", err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// GetProductReviews lists reviews for a product.
func GetProductReviews(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		reviews, err := store.GetReviews(productID)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch reviews", err)
			return
		}
		ctx.JSON(http.StatusOK, reviews)
	}
}

// CreateProductReview records a review by the signed-in user.
func CreateProductReview(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		var review models.Review
		if err := ctx.ShouldBindJSON(&review); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		review.ProductID = productID
		review.UserID = ctx.GetInt("userId")

		if err := store.CreateReview(&review); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to create review", err)
			return
		}
		ctx.JSON(http.StatusCreated, review)
	}
}
