package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"office97/internal/bridge"
	"office97/internal/logger"
	"office97/internal/window"
)

type message struct {
	From    string
	Subject string
}

var welcomeMessages = []message{
	{From: "Microsoft Outlook", Subject: "Welcome to Microsoft Outlook 97!"},
	{From: "Office Assistant", Subject: "It looks like you're writing a letter"},
}

// mailView is the Outlook body: an inbox and a compose form. Documents sent
// from other windows arrive as attachments of a new message.
type mailView struct {
	mail   bridge.Mail
	logger logger.Logger

	doc         *documentView
	inbox       []message
	sent        []message
	inboxList   *widget.List
	sentList    *widget.List
	to          *widget.Entry
	subject     *widget.Entry
	attachments []bridge.DocumentInfo
	attachLabel *widget.Label
	tabs        *container.AppTabs
	composeTab  *container.TabItem
	content     fyne.CanvasObject
}

func newMailView(mail bridge.Mail, log logger.Logger) *mailView {
	var docs bridge.Documents
	if mail != nil {
		docs = mail
	}

	v := &mailView{
		mail:        mail,
		logger:      log,
		doc:         newDocumentView(window.Outlook, docs, log),
		inbox:       append([]message(nil), welcomeMessages...),
		to:          widget.NewEntry(),
		subject:     widget.NewEntry(),
		attachLabel: widget.NewLabel("(none)"),
	}
	v.to.SetPlaceHolder("recipient@example.com")

	v.inboxList = newMessageList(func() []message { return v.inbox })
	v.sentList = newMessageList(func() []message { return v.sent })

	send := widget.NewButton("Send", v.send)
	send.Importance = widget.HighImportance
	form := widget.NewForm(
		widget.NewFormItem("To", v.to),
		widget.NewFormItem("Subject", v.subject),
		widget.NewFormItem("Attach", v.attachLabel),
	)
	compose := container.NewBorder(form, container.NewBorder(nil, nil, nil, send), nil, nil, v.doc.body)

	v.composeTab = container.NewTabItem("New Message", compose)
	v.tabs = container.NewAppTabs(
		container.NewTabItem("Inbox", v.inboxList),
		v.composeTab,
		container.NewTabItem("Sent Items", v.sentList),
	)

	v.content = container.NewBorder(v.doc.toolbar.GetContainer(), v.doc.status.GetContainer(), nil, nil, v.tabs)

	if mail != nil {
		mail.OnCompose(v.compose)
	}
	return v
}

// compose starts a new message carrying doc as an attachment.
func (v *mailView) compose(doc bridge.DocumentInfo) {
	v.attachments = append(v.attachments, doc)
	v.attachLabel.SetText(attachmentNames(v.attachments))
	if v.subject.Text == "" {
		v.subject.SetText("FW: " + doc.Name)
	}
	v.tabs.Select(v.composeTab)
	v.doc.status.SetStatus("Attached " + doc.Name)

	v.logger.Debug("MailView", "compose request received", map[string]interface{}{
		"document": doc.Name,
		"app":      doc.App,
	})
}

func (v *mailView) send() {
	subject := strings.TrimSpace(v.subject.Text)
	if subject == "" {
		subject = "(no subject)"
	}
	v.sent = append(v.sent, message{From: "To: " + strings.TrimSpace(v.to.Text), Subject: subject})
	v.sentList.Refresh()

	v.to.SetText("")
	v.subject.SetText("")
	v.doc.body.SetText("")
	v.attachments = nil
	v.attachLabel.SetText("(none)")
	v.doc.status.SetStatus("Message sent")
}

// newMessageList lists sender and subject, one message per row.
func newMessageList(items func() []message) *widget.List {
	return widget.NewList(
		func() int { return len(items()) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), nil, widget.NewLabel(""))
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			msg := items()[id]
			row := item.(*fyne.Container)
			row.Objects[1].(*widget.Label).SetText(msg.From)
			row.Objects[0].(*widget.Label).SetText(msg.Subject)
		},
	)
}

func attachmentNames(docs []bridge.DocumentInfo) string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	return strings.Join(names, ", ")
}
