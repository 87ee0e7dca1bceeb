// Package validate contém as regras de validação e normalização dos campos
// que o gateway aceita nos endpoints de autenticação.
//
// Cada função é pura e determinística: recebe o valor cru (string vazia
// quando o campo veio ausente) e devolve um Result com o valor normalizado ou
// a mensagem de erro voltada ao usuário. As mensagens são as do produto, em
// espanhol.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Result é efêmero, criado por chamada; nada aqui tem efeito colateral.
type Result struct {
	Valid bool
	// Value é o valor normalizado, preenchido apenas quando Valid=true.
	Value string
	// Err é a mensagem para o usuário quando Valid=false.
	Err string
}

func ok(value string) Result    { return Result{Valid: true, Value: value} }
func invalid(msg string) Result { return Result{Err: msg} }

// forma local@dominio.tld, sem espaço em volta do @ e com pelo menos um
// ponto depois dele
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email normaliza para minúsculas sem espaços nas pontas.
func Email(raw string) Result {
	if raw == "" {
		return invalid("Email es requerido")
	}
	trimmed := strings.TrimSpace(raw)
	if !emailRe.MatchString(trimmed) {
		return invalid("Formato de email inválido")
	}
	return ok(strings.ToLower(trimmed))
}

// Password exige o tamanho mínimo e devolve o valor intacto: maiúsculas e
// espaços fazem parte da senha.
func Password(raw string, minLength int) Result {
	if minLength <= 0 {
		minLength = 6
	}
	if raw == "" {
		return invalid("Contraseña es requerida")
	}
	if len(raw) < minLength {
		return invalid(fmt.Sprintf("La contraseña debe tener al menos %d caracteres", minLength))
	}
	return ok(raw)
}

// DNI descarta tudo que não for dígito; DNI argentino tem 7 ou 8 dígitos.
func DNI(raw string) Result {
	if raw == "" {
		return invalid("DNI es requerido")
	}
	clean := digitsOnly(raw)
	if len(clean) < 7 || len(clean) > 8 {
		return invalid("DNI debe tener entre 7 y 8 dígitos")
	}
	return ok(clean)
}

func Phone(raw string) Result {
	if raw == "" {
		return invalid("Teléfono es requerido")
	}
	clean := digitsOnly(raw)
	if len(clean) < 10 || len(clean) > 15 {
		return invalid("Número de teléfono inválido")
	}
	return ok(clean)
}

func OTP(raw string) Result {
	if raw == "" {
		return invalid("Código OTP es requerido")
	}
	clean := digitsOnly(raw)
	if len(clean) != 6 {
		return invalid("El código OTP debe tener 6 dígitos")
	}
	return ok(clean)
}

// Name valida um nome de pessoa usando o rótulo do campo na mensagem
// ("Nombre", "Apellido").
func Name(raw, label string) Result {
	if label == "" {
		label = "Nombre"
	}
	if raw == "" {
		return invalid(label + " es requerido")
	}
	trimmed := strings.TrimSpace(raw)
	if len([]rune(trimmed)) < 2 {
		return invalid(label + " debe tener al menos 2 caracteres")
	}
	if len([]rune(trimmed)) > 50 {
		return invalid(label + " no puede exceder 50 caracteres")
	}
	return ok(trimmed)
}

var birthDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// BirthDate aceita datas de calendário e exige idade entre 13 e 120 anos.
// A idade é ano corrente menos ano de nascimento, sem ajustar por mês/dia.
func BirthDate(raw string) Result {
	if raw == "" {
		return invalid("Fecha de nacimiento es requerida")
	}
	var birth time.Time
	var err error
	for _, layout := range birthDateLayouts {
		birth, err = time.Parse(layout, strings.TrimSpace(raw))
		if err == nil {
			break
		}
	}
	if err != nil {
		return invalid("Fecha de nacimiento inválida")
	}
	age := time.Now().Year() - birth.Year()
	if age < 13 || age > 120 {
		return invalid("Edad debe estar entre 13 y 120 años")
	}
	return ok(raw)
}

var sexValues = []string{"M", "F", "O", "masculino", "femenino", "otro"}

// Sex compara sem diferenciar maiúsculas e devolve o valor como veio.
func Sex(raw string) Result {
	for _, v := range sexValues {
		if raw != "" && strings.EqualFold(raw, v) {
			return ok(raw)
		}
	}
	return invalid("Sexo inválido")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
