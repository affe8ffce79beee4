// Package view renders conversation views: message text plus the keyboard
// the user picks the next step from. Rendering is pure; nothing here talks
// to the transport.
package view

import (
	"fmt"
	"strings"

	"github.com/example/storefront-bot/internal/cart"
	"github.com/example/storefront-bot/internal/catalog"
)

// Button labels of the persistent main menu. The text handlers match on
// these labels, so they live next to the renderer that emits them.
const (
	CatalogLabel     = "🛍 Каталог"
	CartLabel        = "🛒 Корзина"
	PartnershipLabel = "💼 Партнёрство"
	AboutLabel       = "ℹ️ О бренде"
)

const (
	GreetingText     = "Добро пожаловать в BLYUR Cosmetics 💖\nВыберите раздел:"
	ChooseCategory   = "Выберите категорию:"
	EmptyCartText    = "Ваша корзина пуста 🛒"
	ContactPrompt    = "Поделитесь вашим контактом для оформления заказа:"
	AddedToast       = "Добавлено в корзину ✅"
	AddedFollowUp    = "Товар добавлен в корзину ✅\nОткройте \"🛒 Корзина\" для оформления заказа."
	IncrementedToast = "Количество увеличено"
	DecrementedToast = "Количество уменьшено"
	RemovedToast     = "Удалено из корзины"
	ClearedToast     = "Корзина очищена"
	CategoryNotFound = "Категория не найдена"
	ProductNotFound  = "Товар не найден"
	CartIsEmptyAlert = "Корзина пуста"
)

const PartnershipText = "🤝 Условия сотрудничества:\n\n" +
	"🔹 Опт — скидка 30% (от 100000 ₽).\n" +
	"🔹 Опт — скидка 20% (от 60000 ₽).\n" +
	"🔹 Опт — скидка 10% (от 30000 ₽).\n" +
	"🔹 Первые 2 закупки для новых партнёров — по оптовым ценам.\n" +
	"🔹 Реализация — срок 2 месяца, вознаграждение 10%-20%.\n\n" +
	"Хотите оставить заявку? Напишите ваш телефон."

const AboutText = "🌿 BLYUR Cosmetics — российский бренд профессиональной косметики для мастеров и салонов красоты.\n\n" +
	"Мы делаем продукты высокого качества для маникюра, педикюра и косметологии."

// Choice is one pressable option: a label the user sees and an opaque token
// the router interprets.
type Choice struct {
	Label string
	Token string
}

// View is a renderable message. Image, Inline and Reply are each optional;
// Inline and Reply are never both set.
type View struct {
	Text   string
	Image  string
	Inline [][]Choice
	Reply  [][]string
}

// MainMenu is the greeting plus the persistent top-level menu.
func MainMenu() View {
	return View{
		Text: GreetingText,
		Reply: [][]string{
			{CatalogLabel, CartLabel},
			{PartnershipLabel, AboutLabel},
		},
	}
}

// CategoryList shows one button per category.
func CategoryList(categories []string) View {
	rows := make([][]Choice, 0, len(categories))
	for _, name := range categories {
		rows = append(rows, []Choice{{Label: name, Token: "category:" + name}})
	}
	return View{Text: ChooseCategory, Inline: rows}
}

// ProductList shows one button per product in the category, plus a
// back-to-categories button.
func ProductList(category string, products []catalog.Product) View {
	rows := make([][]Choice, 0, len(products)+1)
	for _, p := range products {
		rows = append(rows, []Choice{{Label: p.Name, Token: "product:" + p.ID}})
	}
	rows = append(rows, []Choice{{Label: "⬅️ К категориям", Token: "back:categories"}})
	return View{
		Text:   fmt.Sprintf("Категория: %s\nВыберите товар:", category),
		Inline: rows,
	}
}

// ProductDetail is the product card: photo, caption and add/back buttons.
func ProductDetail(p catalog.Product) View {
	return View{
		Text:  fmt.Sprintf("📦 %s\n💰 %s (%s)\n\n%s", p.Name, p.PriceText, p.Volume, p.Description),
		Image: p.ImageRef,
		Inline: [][]Choice{
			{{Label: "➕ В корзину", Token: "add:" + p.ID}},
			{{Label: "⬅️ К товарам", Token: "back:products:" + p.ID}},
		},
	}
}

// Cart renders the cart contents with a quantity-control row per entry and
// a clear/checkout row. An empty cart renders as plain text with no
// keyboard.
func Cart(entries []cart.Entry, lines []string, total int, cat *catalog.Store) View {
	if len(entries) == 0 {
		return View{Text: EmptyCartText}
	}
	rows := make([][]Choice, 0, len(entries)+1)
	for _, e := range entries {
		name := e.ProductID
		if p, ok := cat.FindProduct(e.ProductID); ok {
			name = truncate(p.Name, 18)
		}
		rows = append(rows, []Choice{
			{Label: "➖ " + name, Token: "cart:dec:" + e.ProductID},
			{Label: fmt.Sprintf("%d шт.", e.Quantity), Token: "noop"},
			{Label: "➕", Token: "cart:inc:" + e.ProductID},
			{Label: "❌", Token: "cart:del:" + e.ProductID},
		})
	}
	rows = append(rows, []Choice{
		{Label: "🧹 Очистить", Token: "cart:clear"},
		{Label: "✅ Оформить", Token: "cart:checkout"},
	})
	return View{Text: CartText(lines, total), Inline: rows}
}

// CartText is the cart summary used both when the cart message is first
// sent and when it is edited in place.
func CartText(lines []string, total int) string {
	return fmt.Sprintf("🛍 Ваша корзина:\n\n%s\n\nИтого: %d ₽", strings.Join(lines, "\n"), total)
}

// OrderConfirmation is the thank-you message sent to the customer.
func OrderConfirmation(lines []string, total int, phone string) string {
	return fmt.Sprintf("Спасибо! Ваш заказ принят:\n\n%s\n\nИтого: %d ₽\nТелефон: %s",
		strings.Join(lines, "\n"), total, phone)
}

// truncate shortens a label to at most n characters, counting runes so
// Cyrillic names do not get cut mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
