// Package access concentra as decisões de autenticação do webhook e de autorização
// dos usuários do chat. Todas as funções são puras e falham fechado.
package access

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMalformedAllowList = errors.New("lista de usuários autorizados malformada")

// AllowList é o conjunto de identidades autorizadas, já normalizadas como string
type AllowList map[string]struct{}

func (a AllowList) Contains(userID string) bool {
	_, ok := a[strings.TrimSpace(userID)]
	return ok
}

// AuthorizeWebhook compara o segredo recebido no header com o configurado.
// Segredo configurado vazio rejeita tudo.
func AuthorizeWebhook(received, expected string) bool {
	if expected == "" || received == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(received), []byte(expected)) == 1
}

// ParseAllowList lê uma lista JSON com ids numéricos ou strings, ex: [123, "456"]
func ParseAllowList(raw string) (AllowList, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AllowList{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	decoder.UseNumber()

	var items []any
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAllowList, err)
	}

	allowList := make(AllowList, len(items))
	for _, item := range items {
		id, err := normalizeIdentity(item)
		if err != nil {
			return nil, err
		}
		allowList[id] = struct{}{}
	}

	return allowList, nil
}

func normalizeIdentity(item any) (string, error) {
	if n, ok := jsoniter.CastJsonNumber(item); ok {
		return canonicalNumber(n)
	}

	switch v := item.(type) {
	case string:
		id := strings.TrimSpace(v)
		if id == "" {
			return "", fmt.Errorf("%w: identidade vazia", ErrMalformedAllowList)
		}
		return id, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: tipo não suportado %T", ErrMalformedAllowList, item)
	}
}

// canonicalNumber garante que 1.0e3 e 1000 virem a mesma identidade
func canonicalNumber(n string) (string, error) {
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		return strconv.FormatInt(i, 10), nil
	}

	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return "", fmt.Errorf("%w: número inválido %q", ErrMalformedAllowList, n)
	}

	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// AuthorizeUser libera o admin sempre; os demais precisam estar na lista.
// Se a lista não puder ser lida ninguém além do admin é autorizado.
func AuthorizeUser(userID, adminID, rawAllowList string) bool {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false
	}

	if adminID = strings.TrimSpace(adminID); adminID != "" && adminID == userID {
		return true
	}

	allowList, err := ParseAllowList(rawAllowList)
	if err != nil {
		return false
	}

	return allowList.Contains(userID)
}
