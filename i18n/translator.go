package i18n

// Translator retrieves localized messages for issue codes. data provides
// optional metadata to embed in the message (for example, "suffixes" or
// "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須フィールドが不足しています"
		case "restricted_character":
			return "使用できない文字が含まれています"
		case "invalid_suffix":
			return "許可されていない拡張子です"
		case "duplicate_entries":
			return "重複する要素があります"
		case "invalid_version":
			return "バージョン文字列が不正です"
		case "invalid_identifier":
			return "識別子が不正です"
		case "invalid_datetime":
			return "日時の形式が不正です"
		case "invalid_orcid":
			return "ORCID iD が不正です"
		case "invalid_si_unit":
			return "SI 単位の形式が不正です"
		case "does_not_exist":
			return "参照先が存在しません"
		case "unknown_format_version":
			return "未知のフォーマットバージョンです"
		case "unknown_resource_type":
			return "未知のリソースタイプです"
		case "internal_error":
			return "内部エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "field required"
		case "restricted_character":
			return "contains a restricted character"
		case "invalid_suffix":
			return "disallowed suffix"
		case "duplicate_entries":
			return "duplicate entries"
		case "invalid_version":
			return "invalid version string"
		case "invalid_identifier":
			return "invalid identifier"
		case "invalid_datetime":
			return "invalid datetime"
		case "invalid_orcid":
			return "invalid ORCID iD"
		case "invalid_si_unit":
			return "invalid SI unit"
		case "does_not_exist":
			return "reference target does not exist"
		case "unknown_format_version":
			return "unknown format version"
		case "unknown_resource_type":
			return "unknown resource type"
		case "internal_error":
			return "internal error"
		}
	}
	return code
}

// New returns a Translator for lang ("en" or "ja"); unknown languages fall
// back to English.
func New(lang string) Translator { return dictTranslator{lang: lang} }
