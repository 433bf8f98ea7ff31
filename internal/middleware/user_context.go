package middlewares

import (
	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	UserNameKey  = "user_name"
	SessionIDKey = "session_id"
)

// ExtractUserContext identifica o usuário e a sessão de busca.
// Usuário: header X-User-ID injetado pelo gateway ou claim sub do JWT.
// Sessão: header X-Session-ID, senão o usuário, senão o IP do cliente.
// Nunca rejeita a requisição; autorização é responsabilidade do gateway.
func ExtractUserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		userName := c.GetHeader("X-User-Name")

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if claims, err := parseBearerClaims(authHeader); err == nil {
				if userID == "" {
					userID = claims.Subject
				}
				if userName == "" {
					userName = claims.Name
				}
			}
		}

		if userID != "" {
			c.Set(UserIDKey, userID)
		}
		if userName != "" {
			c.Set(UserNameKey, userName)
		}

		session := c.GetHeader("X-Session-ID")
		switch {
		case session != "":
		case userID != "":
			session = "user:" + userID
		default:
			session = "ip:" + c.ClientIP()
		}
		c.Set(SessionIDKey, session)

		c.Next()
	}
}

// GetUserID retorna o ID único do usuário
func GetUserID(c *gin.Context) string {
	return getString(c, UserIDKey)
}

// GetUserName retorna o nome completo do usuário
func GetUserName(c *gin.Context) string {
	return getString(c, UserNameKey)
}

// GetSessionID retorna a chave de sessão usada para descartar respostas antigas
func GetSessionID(c *gin.Context) string {
	return getString(c, SessionIDKey)
}

func getString(c *gin.Context, key string) string {
	if value, exists := c.Get(key); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
