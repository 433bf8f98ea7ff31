package archive

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

// Kind identifica o formato da resposta do arquivo, resolvido uma única vez na decodificação
type Kind int

const (
	// KindError: o corpo trouxe um campo error não vazio
	KindError Kind = iota
	// KindBulletinDetail: resposta a uma consulta por número de BO
	KindBulletinDetail
	// KindTermDetail: resposta a uma consulta por termos
	KindTermDetail
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindBulletinDetail:
		return "bulletin"
	case KindTermDetail:
		return "terms"
	}
	return "unknown"
}

// Entry é uma entrada de details. Index é a posição original no array.
type Entry struct {
	Index    int
	BONumber string
	Details  []string
}

// Result é a resposta do arquivo já resolvida em um dos formatos conhecidos
type Result struct {
	Kind         Kind
	TotalMatches int
	BONumbers    []string
	Entries      []Entry
	FullText     string
	ErrorMessage string
}

// Decode resolve a resposta em um Result. Campos ausentes ou com tipo
// inesperado viram valores vazios; a decodificação nunca falha.
func Decode(req *models.RemoteSearchRequest, resp *models.RemoteSearchResponse) Result {
	result := Result{Kind: KindTermDetail}
	if req != nil && req.IsBulletinLookup() {
		result.Kind = KindBulletinDetail
	}
	if resp == nil {
		return result
	}

	if msg := strings.TrimSpace(resp.Error); msg != "" {
		return Result{Kind: KindError, ErrorMessage: msg}
	}

	if resp.TotalMatches != nil {
		result.TotalMatches = *resp.TotalMatches
	}
	result.BONumbers = resp.BONumbers
	result.FullText = resp.TextoCompleto
	result.Entries = decodeEntries(resp.Details)

	return result
}

type rawEntry struct {
	BONumber json.RawMessage `json:"bo_number"`
	Details  json.RawMessage `json:"details"`
}

func decodeEntries(raw json.RawMessage) []Entry {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		var re rawEntry
		if err := json.Unmarshal(item, &re); err != nil {
			// entrada que não é objeto: mantém a posição sem conteúdo
			entries = append(entries, Entry{Index: i})
			continue
		}
		entries = append(entries, Entry{
			Index:    i,
			BONumber: looseString(re.BONumber),
			Details:  decodeDetails(re.Details),
		})
	}
	return entries
}

func decodeDetails(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	details := make([]string, len(items))
	for i, item := range items {
		details[i] = looseString(item)
	}
	return details
}

// looseString aceita string, número ou null
func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return ""
}
