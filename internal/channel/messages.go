package channel

import (
	"fmt"
	"strings"

	"chatorder/internal/models"
	"chatorder/internal/service"

	"github.com/google/uuid"
)

// Customer-facing text is Japanese, matching the audience of the shops the
// platform serves.

var statusLabels = map[models.OrderStatus]string{
	models.OrderStatusPending:   "受付中",
	models.OrderStatusPreparing: "準備中",
	models.OrderStatusReady:     "準備完了",
	models.OrderStatusCompleted: "完了",
	models.OrderStatusCancelled: "キャンセル",
}

func StatusLabel(s models.OrderStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// OrderNumber renders a short human-readable order reference.
func OrderNumber(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}

func OrderConfirmText(ev service.OrderCreatedEvent) string {
	var b strings.Builder
	b.WriteString("注文が確定しました！\n\n")
	fmt.Fprintf(&b, "注文番号: #%s\n", OrderNumber(ev.OrderID))
	if ev.ShopName != "" {
		fmt.Fprintf(&b, "ショップ: %s\n", ev.ShopName)
	}
	b.WriteString("\n注文内容:\n")
	for _, it := range ev.Items {
		fmt.Fprintf(&b, "• %s × %d = ¥%d\n", it.ProductName, it.Quantity, it.Subtotal)
	}
	fmt.Fprintf(&b, "\n合計金額: ¥%d\n", ev.TotalAmount)
	if ev.Note != "" {
		fmt.Fprintf(&b, "備考: %s\n", ev.Note)
	}
	b.WriteString("\nご注文ありがとうございます！\n後ほど完成予定時間をお知らせいたします。")
	return b.String()
}

func StatusChangedText(ev service.OrderStatusChangedEvent) string {
	var b strings.Builder
	b.WriteString("ご注文の状況が更新されました\n\n")
	fmt.Fprintf(&b, "注文番号: #%s\n", OrderNumber(ev.OrderID))
	if ev.ShopName != "" {
		fmt.Fprintf(&b, "ショップ: %s\n", ev.ShopName)
	}
	fmt.Fprintf(&b, "ステータス: %s → %s", StatusLabel(ev.From), StatusLabel(ev.To))
	return b.String()
}

func CancelledText(ev service.OrderCancelledEvent) string {
	var b strings.Builder
	b.WriteString("🚫 注文がキャンセルされました\n\n")
	if ev.ShopName != "" {
		fmt.Fprintf(&b, "ショップ: %s\n", ev.ShopName)
	}
	fmt.Fprintf(&b, "注文番号: #%s\n", OrderNumber(ev.OrderID))
	fmt.Fprintf(&b, "金額: ¥%d\n", ev.TotalAmount)
	b.WriteString("\n注文のキャンセルが完了しました。")
	return b.String()
}

func OrderListText(orders []models.Order) string {
	if len(orders) == 0 {
		return "注文履歴はありません。"
	}
	var b strings.Builder
	b.WriteString("注文履歴:\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "\n#%s  %s  ¥%d\n%s",
			OrderNumber(o.ID), StatusLabel(o.Status), o.TotalAmount,
			o.CreatedAt.Format("2006/01/02 15:04"))
	}
	return b.String()
}

func OrderDetailText(o *models.Order, productNames map[uuid.UUID]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "注文番号: #%s\n", OrderNumber(o.ID))
	fmt.Fprintf(&b, "ステータス: %s\n", StatusLabel(o.Status))
	fmt.Fprintf(&b, "注文日時: %s\n", o.CreatedAt.Format("2006/01/02 15:04"))
	b.WriteString("\n注文内容:\n")
	for _, it := range o.Items {
		name := productNames[it.ProductID]
		if name == "" {
			name = "商品"
		}
		fmt.Fprintf(&b, "• %s × %d = ¥%d\n", name, it.Quantity, it.Subtotal())
	}
	fmt.Fprintf(&b, "\n合計金額: ¥%d", o.TotalAmount)
	return b.String()
}

func HelpText() string {
	return "「注文確認」ご注文の確認\n「キャンセル」注文のキャンセル\nメニューからご注文いただけます。"
}
