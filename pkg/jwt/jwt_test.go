package jwt_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tokenIssuer "teoswallet/pkg/jwt"
)

var _ = Describe("JWTService", func() {
	var service *tokenIssuer.JWTService

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		tokenIssuer.TimeNow = time.Now
	})

	It("signs and validates a token roundtrip", func() {
		token := service.Generate(tokenIssuer.TokenInfo{
			UserName:   "cleopatra",
			Subject:    "user-1",
			Expiration: 24,
		})

		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["username"]).To(Equal("cleopatra"))
		Expect(claims["sub"]).To(Equal("user-1"))
	})

	It("rejects a token signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(tokenIssuer.TokenInfo{
			UserName:   "cleopatra",
			Subject:    "user-1",
			Expiration: 24,
		}))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects an expired token", func() {
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		signed, err := service.Sign(service.Generate(tokenIssuer.TokenInfo{
			UserName:   "cleopatra",
			Subject:    "user-1",
			Expiration: 24,
		}))
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = time.Now
		_, err = service.Validate(signed)
		Expect(err).To(HaveOccurred())
	})
})
