package locale

var fa = map[string]string{
	"common.author":     "نویسنده",
	"common.translator": "مترجم",
	"common.year":       "سال انتشار",
	"common.language":   "زبان",
	"common.pages":      "تعداد صفحات",
	"common.genre":      "ژانر",
	"common.book":       "کتاب",
	"common.session":    "جلسه",
	"common.timezone":   "منطقه زمانی",
	"common.backHome":   "بازگشت به صفحه اصلی",
	"common.unknown":    "نامشخص",

	"index.books":          "کتاب‌ها",
	"index.recentSessions": "جلسات اخیر",
	"index.tagline":        "هر هفته، یک کتاب جدید",

	"book.about":           "درباره کتاب",
	"book.links":           "منابع و پیوندها",
	"book.relatedSessions": "جلسات مرتبط",

	"links.wikipediaFarsi":   "ویکی‌پدیای فارسی",
	"links.wikipediaEnglish": "ویکی‌پدیای انگلیسی",
	"links.wikisource":       "ویکی‌نبشته",
	"links.goodreadsEnglish": "گودریدز انگلیسی",
	"links.goodreadsFarsi":   "گودریدز فارسی",
	"links.audiobook":        "نسخه صوتی",

	"session.relatedBook":    "کتاب مرتبط",
	"session.viewBook":       "مشاهده کتاب",
	"session.viewBookDetail": "مشاهده جزئیات کتاب",
	"session.attendees":      "شرکت‌کنندگان",
	"session.keyDiscussions": "موضوعات کلیدی",
	"session.nextActions":    "اقدامات بعدی",
	"session.started":        "جلسه شروع شده است",
	"session.meetLink":       "پیوند تماس تصویری",

	"status.book.completed": "تکمیل شده",
	"status.book.current":   "در حال خواندن",
	"status.book.upcoming":  "آینده",
	"status.session.held":      "برگزار شده",
	"status.session.upcoming":  "آینده",
	"status.session.cancelled": "لغو شده",

	"countdown.days":         "%d روز دیگر",
	"countdown.hours":        "%d ساعت دیگر",
	"countdown.hoursMinutes": "%d ساعت و %d دقیقه دیگر",
	"countdown.minutes":      "%d دقیقه دیگر",
	"countdown.seconds":      "%d ثانیه دیگر",

	"notFound.title":   "صفحه پیدا نشد",
	"notFound.message": "چنین صفحه‌ای وجود ندارد.",
}
