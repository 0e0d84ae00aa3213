package entities

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Customer is the payer identification sent to the payment gateway.
//
// Presell traffic rarely fills a checkout form, so any field the caller does
// not supply is synthesized with a format-valid placeholder: the document
// passes the CPF check-digit algorithm and the phone matches the national
// mobile pattern, but neither refers to a real identity.
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

var syntheticNames = []string{
	"Ana", "Bruno", "Carla", "Daniel", "Eduarda", "Felipe", "Gabriela", "Henrique",
}

var syntheticEmailDomains = []string{
	"example.com", "test.com", "demo.com", "sample.com",
}

// SynthesizeCustomer fills the blanks of a caller-supplied customer.
func SynthesizeCustomer(name, email, document, phone string) Customer {
	c := Customer{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Document: strings.TrimSpace(document),
		Phone:    strings.TrimSpace(phone),
	}
	if c.Name == "" {
		c.Name = syntheticNames[rand.IntN(len(syntheticNames))]
	}
	if c.Email == "" {
		c.Email = generateEmail()
	}
	if c.Document == "" {
		c.Document = GenerateCPF()
	}
	if c.Phone == "" {
		c.Phone = GeneratePhone()
	}
	return c
}

// GenerateCPF produces a random 11-digit document whose two trailing digits
// satisfy the modulo-11 CPF verification algorithm.
func GenerateCPF() string {
	digits := make([]int, 9, 11)
	for i := range digits {
		digits[i] = rand.IntN(10)
	}
	digits = append(digits, cpfCheckDigit(digits, 10))
	digits = append(digits, cpfCheckDigit(digits, 11))

	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func cpfCheckDigit(digits []int, startWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (startWeight - i)
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// IsValidCPF checks the two modulo-11 verification digits of an 11-digit CPF.
func IsValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	digits := make([]int, 11)
	for i := 0; i < 11; i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return false
		}
		digits[i] = int(cpf[i] - '0')
	}
	return digits[9] == cpfCheckDigit(digits[:9], 10) &&
		digits[10] == cpfCheckDigit(digits[:10], 11)
}

// GeneratePhone produces an 11-digit mobile number: two-digit DDD, the mobile
// "9" prefix and eight random digits.
func GeneratePhone() string {
	ddd := rand.IntN(90) + 10
	first := rand.IntN(9000) + 1000
	second := rand.IntN(9000) + 1000
	return fmt.Sprintf("%d9%d%d", ddd, first, second)
}

func generateEmail() string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	name := make([]byte, 8)
	for i := range name {
		name[i] = letters[rand.IntN(len(letters))]
	}
	return fmt.Sprintf("%s@%s", name, syntheticEmailDomains[rand.IntN(len(syntheticEmailDomains))])
}
