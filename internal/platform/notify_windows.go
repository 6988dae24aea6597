//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func psQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

const toastPrelude = `[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `

// toastScript builds the PowerShell that raises a toast, with the icon when
// one is given.
func toastScript(title, body string, opts Options) string {
	var sb strings.Builder
	sb.WriteString(toastPrelude)
	kind := "ToastText02"
	icon := strings.TrimSpace(opts.IconPath)
	if icon != "" {
		kind = "ToastImageAndText02"
	}
	fmt.Fprintf(&sb, "$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); ", kind)
	sb.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&sb, "$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(title))
	fmt.Fprintf(&sb, "$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(body))
	if icon != "" {
		fmt.Fprintf(&sb, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	sb.WriteString("$toast = [Windows.UI.Notifications.ToastNotification]::new($template); ")
	fmt.Fprintf(&sb, "[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);", psQuote(opts.appName()))
	return sb.String()
}

// Notify displays a toast notification using the Windows notification center.
func Notify(title, body string, opts Options) error {
	return exec.Command("powershell.exe", "-NoProfile", "-Command", toastScript(title, body, opts)).Run()
}
