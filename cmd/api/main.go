package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/payment"
	infraRepo "app/internal/infra/repository"
	appmw "app/internal/middleware"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くても起動できる（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//logger初期化
	var zapConfig zap.Config
	if cfg.GoEnv == "prod" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	logger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Session{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewSessionCartGormRepository(gormDB, cfg.SessionTTL)

	//起動時に期限切れセッションを掃除する
	if err := cartRepo.DeleteExpired(context.Background()); err != nil {
		zap.S().Warnw("failed to delete expired sessions", "err", err)
	}

	//決済ゲートウェイ
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, clock)
	resetUC := auth.NewPasswordResetUsecase(userRepo, hasher, clock, cfg.ResetTokenSecret, time.Hour)
	catalogUC := usecase.NewCatalogUsecase(categoryRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, productRepo, gateway, idGen, cfg.Currency)

	//Handler生成
	catalogH := handler.NewCatalogHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)
	authH := handler.NewAuthHandler(registerUC, loginUC, resetUC, cartRepo, cfg.GoEnv != "prod")

	//セッションCookieストア
	store := appmw.NewCookieStore(
		cfg.SessionSecret,
		cfg.GoEnv == "prod",
		int(cfg.SessionTTL/time.Second),
	)

	//Server起動
	e := server.New(store)
	server.RegisterRoutes(e, catalogH, cartH, checkoutH, authH)

	addr := ":" + cfg.Port
	zap.S().Infow("starting server", "addr", addr)
	if err := server.Start(e, addr); err != nil {
		zap.S().Fatalw("server stopped", "err", err)
	}
}
