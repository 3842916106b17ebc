package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/vedran77/miniwall/internal/config"
	"github.com/vedran77/miniwall/internal/database"
	"github.com/vedran77/miniwall/internal/logger"
	postgresrepo "github.com/vedran77/miniwall/internal/repository/postgres"
	"github.com/vedran77/miniwall/internal/service"
	"github.com/vedran77/miniwall/internal/token"
	"github.com/vedran77/miniwall/internal/transport/http/handlers"
	"github.com/vedran77/miniwall/internal/transport/http/middleware"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	logger.Log.Info("Connected to database")

	// Token service
	tokens, err := token.New([]byte(cfg.JWTPrivateKey), []byte(cfg.JWTPublicKey), cfg.TokenExpiry)
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	commentRepo := postgresrepo.NewCommentRepo(pool)
	likeRepo := postgresrepo.NewLikeRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	postService := service.NewPostService(postRepo, commentRepo, likeRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	likeService := service.NewLikeService(likeRepo, postRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)

	// Auth middleware resolves the bearer token into a user
	auth := middleware.Auth(tokens, userRepo)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fmt.Sprintf(`{"version": %q}`, version)))
	})
	mux.HandleFunc("POST /api/user/register", authHandler.Register)
	mux.HandleFunc("POST /api/user/sign-in", authHandler.SignIn)

	// Protected - Posts
	mux.Handle("POST /api/post/create", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /api/post/read/{post_id}", auth(http.HandlerFunc(postHandler.Read)))
	mux.Handle("PATCH /api/post/update/{post_id}", auth(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /api/post/delete/{post_id}", auth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("GET /api/post/list/{scope}", auth(http.HandlerFunc(postHandler.List)))

	// Protected - Comments
	mux.Handle("POST /api/comment/create/{post_id}", auth(http.HandlerFunc(commentHandler.Create)))
	mux.Handle("GET /api/comment/read/{comment_id}", auth(http.HandlerFunc(commentHandler.Read)))
	mux.Handle("PATCH /api/comment/update/{comment_id}", auth(http.HandlerFunc(commentHandler.Update)))
	mux.Handle("DELETE /api/comment/delete/{comment_id}", auth(http.HandlerFunc(commentHandler.Delete)))
	mux.Handle("GET /api/comment/list/{scope}", auth(http.HandlerFunc(commentHandler.List)))

	// Protected - Likes
	mux.Handle("POST /api/like/create/{post_id}", auth(http.HandlerFunc(likeHandler.Create)))
	mux.Handle("DELETE /api/like/delete/{like_id}", auth(http.HandlerFunc(likeHandler.Delete)))
	mux.Handle("GET /api/like/list/{scope}", auth(http.HandlerFunc(likeHandler.List)))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Log.Infof("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
