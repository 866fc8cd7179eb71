package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/repository"

	"github.com/labstack/gommon/log"
)

type RegisterInput struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name" validate:"required,max=255"`
	Phone           string `json:"phone" validate:"max=30"`
	Role            string `json:"role"`
	BusinessName    string `json:"business_name" validate:"max=255"`
	Address         string `json:"address" validate:"max=255"`
	City            string `json:"city" validate:"max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// プロフィール未作成のユーザーが送る
type ProfileInput struct {
	FullName     string `json:"full_name" validate:"required,max=255"`
	Phone        string `json:"phone" validate:"max=30"`
	Role         string `json:"role"`
	BusinessName string `json:"business_name" validate:"max=255"`
	Address      string `json:"address" validate:"max=255"`
	City         string `json:"city" validate:"max=100"`
}

// 登録済みプロフィールの編集（ロール・メールは変えない）
type ProfileUpdateInput struct {
	FullName     string `json:"full_name" validate:"required,max=255"`
	Phone        string `json:"phone" validate:"max=30"`
	BusinessName string `json:"business_name" validate:"max=255"`
	Address      string `json:"address" validate:"max=255"`
	City         string `json:"city" validate:"max=100"`
}

// 画面遷移先だけを返すレスポンス
type RedirectResult struct {
	Redirect string `json:"redirect"`
}

type LoginResult struct {
	Redirect string           `json:"redirect"`
	Session  *backend.Session `json:"session"`
}

type AuthUsecase struct {
	client    backend.Client
	validator AuthValidator
	mailer    ConfirmationSender
	carts     CartStore
	catalog   CatalogCache
	logger    *log.Logger
}

func NewAuthUsecase(
	client backend.Client,
	validator AuthValidator,
	mailer ConfirmationSender,
	carts CartStore,
	catalog CatalogCache,
	logger *log.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		client:    client,
		validator: validator,
		mailer:    mailer,
		carts:     carts,
		catalog:   catalog,
		logger:    logger,
	}
}

// 会員登録
// signUp → profiles insert → 確認メール。途中で失敗したらそこで止める。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (RedirectResult, error) {
	//ローカルの検証（ここで落ちたらバックエンドは呼ばない）
	if err := u.validator.ValidateRegister(ctx, in); err != nil {
		return RedirectResult{}, err
	}
	role, err := model.ParseRole(in.Role)
	if err != nil {
		return RedirectResult{}, NewHTTPError(http.StatusBadRequest, MsgInvalidRole)
	}

	user, confirmToken, err := u.client.Auth().SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return RedirectResult{}, u.signUpError(err)
	}

	_, err = u.client.Profiles().Create(ctx, model.Profile{
		ID:           user.ID,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        user.Email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		BusinessName: strings.TrimSpace(in.BusinessName),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
	})
	if err != nil {
		//ユーザーは作成済み。ログイン後に complete-profile で作り直せる
		u.logger.Errorj(log.JSON{"event": "profile_insert_failed", "user_id": user.ID, "error": err.Error()})
		if backend.IsConfigurationError(err) {
			return RedirectResult{}, err
		}
		return RedirectResult{}, NewHTTPError(http.StatusInternalServerError, MsgProfileFailed)
	}

	//メール送信の失敗は登録失敗にしない
	if err := u.mailer.SendConfirmation(ctx, user.Email, confirmToken); err != nil {
		u.logger.Errorj(log.JSON{"event": "confirmation_mail_failed", "user_id": user.ID, "error": err.Error()})
	}

	u.logger.Infoj(log.JSON{"event": "user_registered", "user_id": user.ID, "role": string(role)})
	return RedirectResult{Redirect: model.VerifyEmailPath}, nil
}

func (u *AuthUsecase) signUpError(err error) error {
	switch {
	case errors.Is(err, backend.ErrUserAlreadyRegistered):
		return NewHTTPError(http.StatusConflict, MsgUserAlreadyExists)
	case backend.IsConfigurationError(err):
		return err
	default:
		u.logger.Errorj(log.JSON{"event": "sign_up_failed", "error": err.Error()})
		return NewHTTPError(http.StatusInternalServerError, MsgRegisterFailed)
	}
}

// ログインしてロールごとの画面を返す
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput, userAgent string) (LoginResult, error) {
	if err := u.validator.ValidateLogin(ctx, in); err != nil {
		return LoginResult{}, err
	}

	session, err := u.client.Auth().SignIn(ctx, in.Email, in.Password, userAgent)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrInvalidCredentials):
			return LoginResult{}, NewHTTPError(http.StatusUnauthorized, MsgInvalidCredentials)
		case errors.Is(err, backend.ErrEmailNotConfirmed):
			return LoginResult{}, NewHTTPError(http.StatusUnauthorized, MsgEmailNotConfirmed)
		case backend.IsConfigurationError(err):
			return LoginResult{}, err
		default:
			u.logger.Errorj(log.JSON{"event": "sign_in_failed", "error": err.Error()})
			return LoginResult{}, NewHTTPError(http.StatusInternalServerError, MsgLoginFailed)
		}
	}

	return LoginResult{
		Redirect: u.landingPath(ctx, session.User.ID),
		Session:  session,
	}, nil
}

// プロフィールが読めなければ complete-profile へ
func (u *AuthUsecase) landingPath(ctx context.Context, userID string) string {
	profile, err := u.client.Profiles().FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			u.logger.Errorj(log.JSON{"event": "profile_lookup_failed", "user_id": userID, "error": err.Error()})
		}
		return model.CompleteProfilePath
	}
	return profile.Role.DashboardPath()
}

// ログアウト（セッション失効・カート破棄）
// 失効に失敗してもトップへ戻す。
func (u *AuthUsecase) Logout(ctx context.Context, session *backend.Session) RedirectResult {
	if session != nil {
		if err := u.client.Auth().SignOut(ctx, session.AccessToken); err != nil {
			u.logger.Errorj(log.JSON{"event": "sign_out_failed", "error": err.Error()})
		}
		u.carts.Drop(session.SessionID)
	}
	return RedirectResult{Redirect: model.HomePath}
}

// 確認メールのリンク
func (u *AuthUsecase) ConfirmEmail(ctx context.Context, token string) (RedirectResult, error) {
	user, err := u.client.Auth().ConfirmEmail(ctx, token)
	if err != nil {
		if errors.Is(err, backend.ErrInvalidConfirmationToken) {
			return RedirectResult{}, NewHTTPError(http.StatusBadRequest, MsgInvalidConfirmation)
		}
		if backend.IsConfigurationError(err) {
			return RedirectResult{}, err
		}
		u.logger.Errorj(log.JSON{"event": "confirm_email_failed", "error": err.Error()})
		return RedirectResult{}, NewHTTPError(http.StatusInternalServerError, MsgInvalidConfirmation)
	}
	u.logger.Infoj(log.JSON{"event": "email_confirmed", "user_id": user.ID})
	return RedirectResult{Redirect: model.LoginPath}, nil
}

// 登録時にprofileが作れなかったユーザー向け
// 既にあればそのダッシュボードへ。
func (u *AuthUsecase) CompleteProfile(ctx context.Context, session *backend.Session, in ProfileInput) (RedirectResult, error) {
	if session == nil || session.User == nil {
		return RedirectResult{}, NewHTTPError(http.StatusUnauthorized, MsgUnauthorized)
	}
	userID := session.User.ID

	existing, err := u.client.Profiles().FindByID(ctx, userID)
	if err == nil {
		return RedirectResult{Redirect: existing.Role.DashboardPath()}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		if backend.IsConfigurationError(err) {
			return RedirectResult{}, err
		}
		u.logger.Errorj(log.JSON{"event": "profile_lookup_failed", "user_id": userID, "error": err.Error()})
		return RedirectResult{}, NewHTTPError(http.StatusInternalServerError, MsgProfileFailed)
	}

	if err := u.validator.ValidateProfile(ctx, in); err != nil {
		return RedirectResult{}, err
	}
	role, err := model.ParseRole(in.Role)
	if err != nil {
		return RedirectResult{}, NewHTTPError(http.StatusBadRequest, MsgInvalidRole)
	}

	_, err = u.client.Profiles().Create(ctx, model.Profile{
		ID:           userID,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        session.User.Email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		BusinessName: strings.TrimSpace(in.BusinessName),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
	})
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "profile_insert_failed", "user_id": userID, "error": err.Error()})
		return RedirectResult{}, NewHTTPError(http.StatusInternalServerError, MsgProfileFailed)
	}
	return RedirectResult{Redirect: role.DashboardPath()}, nil
}

// ログイン中ユーザーのプロフィール
func (u *AuthUsecase) Profile(ctx context.Context, session *backend.Session) (model.Profile, error) {
	if session == nil || session.User == nil {
		return model.Profile{}, NewHTTPError(http.StatusUnauthorized, MsgUnauthorized)
	}
	return u.findProfile(ctx, session.User.ID)
}

// 名前・連絡先・事業者情報を更新する
// 仕入先の名前と都市は商品一覧にも出るのでキャッシュを捨てる。
func (u *AuthUsecase) UpdateProfile(ctx context.Context, session *backend.Session, in ProfileUpdateInput) (model.Profile, error) {
	if session == nil || session.User == nil {
		return model.Profile{}, NewHTTPError(http.StatusUnauthorized, MsgUnauthorized)
	}
	if err := u.validator.ValidateProfileUpdate(ctx, in); err != nil {
		return model.Profile{}, err
	}

	before, err := u.findProfile(ctx, session.User.ID)
	if err != nil {
		return model.Profile{}, err
	}

	after := before
	after.FullName = strings.TrimSpace(in.FullName)
	after.Phone = strings.TrimSpace(in.Phone)
	after.BusinessName = strings.TrimSpace(in.BusinessName)
	after.Address = strings.TrimSpace(in.Address)
	after.City = strings.TrimSpace(in.City)

	err = u.client.Profiles().Update(ctx, after)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Profile{}, NewHTTPError(http.StatusNotFound, MsgProfileNotFound)
	}
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "profile_update_failed", "user_id": before.ID, "error": err.Error()})
		if backend.IsConfigurationError(err) {
			return model.Profile{}, err
		}
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, MsgProfileFailed)
	}

	if before.Role == model.RoleSupplier {
		if err := u.catalog.Invalidate(ctx); err != nil {
			u.logger.Warnj(log.JSON{"event": "catalog_cache_invalidate_failed", "error": err.Error()})
		}
	}
	writeAudit(ctx, u.client, u.logger, model.AuditLog{
		ActorUserID:  before.ID,
		Action:       model.AuditActionUpdateProfile,
		ResourceType: model.AuditResourceProfile,
		ResourceID:   before.ID,
	}, before, after)

	return after, nil
}

func (u *AuthUsecase) findProfile(ctx context.Context, userID string) (model.Profile, error) {
	p, err := u.client.Profiles().FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Profile{}, NewHTTPError(http.StatusNotFound, MsgProfileNotFound)
	}
	if err != nil {
		if backend.IsConfigurationError(err) {
			return model.Profile{}, err
		}
		u.logger.Errorj(log.JSON{"event": "profile_lookup_failed", "user_id": userID, "error": err.Error()})
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, MsgProfileFailed)
	}
	return p, nil
}
