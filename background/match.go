package background

import (
	"encoding/json"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/wingmate-nz/companion-api/utils"
)

const (
	TaskNotifyMatchConfirmed = "notify_match_confirmed"
	TaskRecordMatchConfirmed = "record_match_confirmed"
	TaskExpireListings       = "expire_listings"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"zh-Hant": "zh_tw",
	"en":      "en",
}

// NotifyMatchConfirmed is a background job to tell both parties their
// listing has been matched. The details payload travels as a JSON
// string because machinery arguments are scalar.
func (m *BackgroundManager) NotifyMatchConfirmed(requester, helper, domain, detailsJSON string) error {
	data := map[string]interface{}{
		"notification_type": "MATCH_CONFIRMED",
		"domain":            domain,
	}
	details := map[string]interface{}{}
	if err := json.Unmarshal([]byte(detailsJSON), &details); err == nil {
		for k, v := range details {
			data[k] = v
		}
	}

	headings := map[string]string{}
	requesterContents := map[string]string{}
	helperContents := map[string]string{}
	for pushLang, lang := range OneSignalLanguageCode {
		localizer := utils.NewLocalizer(lang)
		service := mustLocalize(localizer, "service_"+domain)

		headings[pushLang] = mustLocalize(localizer, "notification_match_confirmed_heading")
		requesterContents[pushLang] = mustLocalizeData(localizer, "notification_match_confirmed_requester", service)
		helperContents[pushLang] = mustLocalizeData(localizer, "notification_match_confirmed_helper", service)
	}

	if err := m.notification.NotifyAccountByText(requester, headings, requesterContents, data); err != nil {
		return err
	}
	return m.notification.NotifyAccountByText(helper, headings, helperContents, data)
}

// RecordMatchConfirmed is a background job to bump the helper's helped
// counter once a confirmation went through
func (m *BackgroundManager) RecordMatchConfirmed(helper string) error {
	return m.store.RecordHelped(helper)
}

// ExpireListings is a background job to deactivate listings whose
// flight or arrival date has passed
func (m *BackgroundManager) ExpireListings() error {
	return m.store.ExpireListings(time.Now().UTC())
}

func mustLocalize(localizer *i18n.Localizer, id string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

func mustLocalizeData(localizer *i18n.Localizer, id, service string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]string{"Service": service},
	})
	if err != nil {
		return id
	}
	return msg
}
