package catalog

import (
	"go-gin-travel-agency/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func lodging(name string, tier model.Tier, price int64, rating float64, star int) LodgingOffer {
	return LodgingOffer{Name: name, Tier: tier, PricePerNight: decimal.NewFromInt(price), Rating: rating, StarClass: star}
}

func excursion(name, description string, price int64, season model.Season, tier model.Tier) ExcursionOffer {
	return ExcursionOffer{Name: name, Description: description, Price: decimal.NewFromInt(price), Season: season, Tier: tier}
}

const (
	basic   = model.TierBasic
	premium = model.TierPremium
)

// Default 內建的示範目錄
func Default() *Catalog {
	return &Catalog{
		Cities: []string{
			"Нижний Новгород", "Санкт-Петербург", "Москва", "Анапа", "Кострома", "Владимир",
			"Великий Устюг", "Вологда", "Архангельск",
		},
		Lodgings: map[string][]LodgingOffer{
			"Архангельск": {
				lodging("Пур-Наволок", basic, 3500, 3.8, 3),
				lodging("Двина", premium, 8000, 4.5, 4),
			},
			"Вологда": {
				lodging("Спасская", basic, 3000, 4.0, 3),
				lodging("Атриум", premium, 7500, 4.7, 4),
			},
			"Великий Устюг": {
				lodging("Сухона", basic, 2800, 3.9, 2),
				lodging("Вотчина Деда Мороза", premium, 10000, 4.8, 4),
			},
			"Владимир": {
				lodging("Заря", basic, 3200, 3.7, 3),
				lodging("Русская деревня", premium, 8500, 4.6, 4),
			},
			"Кострома": {
				lodging("Волга", basic, 3500, 4.1, 3),
				lodging("Аристократ", premium, 9000, 4.7, 4),
			},
			"Анапа": {
				lodging("Алые паруса", basic, 4000, 4.2, 3),
				lodging("Малая бухта", premium, 15000, 4.9, 5),
			},
			"Москва": {
				lodging("Ибис", basic, 5000, 4.0, 3),
				lodging("Ritz-Carlton", premium, 25000, 4.9, 5),
				lodging("Метрополь", premium, 30000, 4.8, 5),
			},
			"Санкт-Петербург": {
				lodging("Станция L1", basic, 4500, 4.1, 3),
				lodging("Коринтия", premium, 20000, 4.9, 5),
				lodging("Астория", premium, 28000, 4.8, 5),
			},
			"Нижний Новгород": {
				lodging("Азимут", basic, 3800, 3.9, 3),
				lodging("Sheraton", premium, 12000, 4.7, 5),
			},
		},
		Excursions: map[string][]ExcursionOffer{
			"Архангельск": {
				excursion("Музей деревянного зодчества", "Экскурсия в музей Малые Корелы", 1500, model.SeasonAny, basic),
				excursion("Северодвинск", "Тур в город корабелов", 3500, model.SeasonSummer, premium),
			},
			"Вологда": {
				excursion("Вологодский кремль", "Обзорная экскурсия по кремлю", 1200, model.SeasonAny, basic),
				excursion("Музей кружева", "Экскурсия в музей вологодского кружева", 1800, model.SeasonAny, premium),
			},
			"Великий Устюг": {
				excursion("Резиденция Деда Мороза", "Посещение вотчины Деда Мороза", 2500, model.SeasonWinter, basic),
				excursion("Обзорная экскурсия", "Тур по историческому центру", 2000, model.SeasonAny, basic),
			},
			"Владимир": {
				excursion("Золотые ворота", "Экскурсия к памятнику ЮНЕСКО", 1500, model.SeasonAny, basic),
				excursion("Боголюбово", "Поездка в церковь Покрова на Нерли", 3000, model.SeasonSummer, premium),
			},
			"Кострома": {
				excursion("Ипатьевский монастырь", "Экскурсия в исторический монастырь", 1800, model.SeasonAny, basic),
				excursion("Музей сыра", "Дегустация костромских сыров", 2500, model.SeasonAny, premium),
			},
			"Анапа": {
				excursion("Археологический музей", "Экскурсия по античным находкам", 1200, model.SeasonAny, basic),
				excursion("Морская прогулка", "Прогулка на катере вдоль побережья", 3500, model.SeasonSummer, premium),
			},
			"Москва": {
				excursion("Красная площадь", "Обзорная экскурсия", 2000, model.SeasonAny, basic),
				excursion("Третьяковская галерея", "Экскурсия с искусствоведом", 5000, model.SeasonAny, premium),
				excursion("Москва-Сити", "Тур по небоскребам с подъемом", 6000, model.SeasonAny, premium),
			},
			"Санкт-Петербург": {
				excursion("Эрмитаж", "Экскурсия по главному музею", 3000, model.SeasonAny, basic),
				excursion("Петергоф", "Тур в летнюю резиденцию", 4500, model.SeasonSummer, premium),
				excursion("Белые ночи", "Ночная экскурсия по разводным мостам", 5000, model.SeasonSummer, premium),
			},
			"Нижний Новгород": {
				excursion("Нижегородский кремль", "Обзорная экскурсия", 1800, model.SeasonAny, basic),
				excursion("Горьковские места", "Литературный тур", 2500, model.SeasonAny, premium),
			},
		},
		GuideLanguages: []language.Tag{language.Russian, language.English},
	}
}
