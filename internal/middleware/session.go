package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// セッションCookieの名前
	SessionName = "storefront_session"

	// Cookie内に保存するキー
	sessionIDKey = "sid"     // サーバ側セッション（カート）のキー
	userIDKey    = "user_id" // ログイン中ユーザー（未ログインなら無し）

	// echo.Contextに入れるキー
	CtxSessionKey = "session_key"
)

// handler.ErrorResponseと同じ形。handlerを参照すると循環になるためここで持つ。
type errorResponse struct {
	Error string `json:"error"`
}

// 署名付きCookieストアを作る。Cookieに入るのはセッションIDとユーザーIDだけで、
// カートの中身はDB側のセッション行に持つ。
func NewCookieStore(secret string, secure bool, maxAgeSeconds int) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// EnsureSession は全リクエストにセッションIDを割り当てる。
// Cookieが無い・壊れている場合は新しいIDを発行して付け直す。
func EnsureSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := echosession.Get(SessionName, c)
			if err != nil && sess == nil {
				return c.JSON(http.StatusInternalServerError, errorResponse{Error: "session error"})
			}

			sid, ok := sess.Values[sessionIDKey].(string)
			if !ok || sid == "" {
				sid = uuid.NewString()
				sess.Values[sessionIDKey] = sid
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return c.JSON(http.StatusInternalServerError, errorResponse{Error: "session error"})
				}
			}

			c.Set(CtxSessionKey, sid)
			return next(c)
		}
	}
}

// ハンドラからセッションキーを取り出す
func SessionKeyFromContext(c echo.Context) (string, bool) {
	sid, ok := c.Get(CtxSessionKey).(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}

// ログイン成功時にユーザーIDをCookieセッションへ保存する
func SetSessionUser(c echo.Context, userID int64) error {
	sess, err := echosession.Get(SessionName, c)
	if err != nil && sess == nil {
		return err
	}
	sess.Values[userIDKey] = userID
	return sess.Save(c.Request(), c.Response())
}

// ログイン中ユーザーのIDを返す。未ログインなら false。
func CurrentUserID(c echo.Context) (int64, bool) {
	sess, err := echosession.Get(SessionName, c)
	if err != nil && sess == nil {
		return 0, false
	}
	id, ok := sess.Values[userIDKey].(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// ログアウト。ユーザーIDを消し、セッションIDも作り直す（旧カートは放棄）。
// 新しいセッションIDを返すので、呼び出し側でサーバ側の旧行を消すこと。
func ResetSession(c echo.Context) (oldSID string, err error) {
	sess, err := echosession.Get(SessionName, c)
	if err != nil && sess == nil {
		return "", err
	}

	oldSID, _ = sess.Values[sessionIDKey].(string)

	delete(sess.Values, userIDKey)
	sess.Values[sessionIDKey] = uuid.NewString()

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", err
	}
	return oldSID, nil
}
