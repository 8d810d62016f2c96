package store

import "dermarokh-backend/internal/models"

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "cat-1", Name: "آرایشی", NameEn: "Makeup", Slug: "makeup", Icon: "palette", ProductCount: 5},
		{ID: "cat-2", Name: "مراقبت پوست", NameEn: "Skincare", Slug: "skincare", Icon: "droplets", ProductCount: 4},
		{ID: "cat-3", Name: "مراقبت مو", NameEn: "Haircare", Slug: "haircare", Icon: "wind", ProductCount: 2},
		{ID: "cat-4", Name: "عطر و ادکلن", NameEn: "Fragrance", Slug: "fragrance", Icon: "flower2", ProductCount: 2},
		{ID: "cat-5", Name: "بهداشت شخصی", NameEn: "Personal Care", Slug: "personal-care", Icon: "heart", ProductCount: 1},
		{ID: "cat-6", Name: "ابزار و لوازم", NameEn: "Tools & Accessories", Slug: "tools", Icon: "wrench", ProductCount: 1},
		{ID: "cat-7", Name: "محصولات طبیعی", NameEn: "Natural & Organic", Slug: "natural", Icon: "leaf", ProductCount: 0},
		{ID: "cat-8", Name: "ست‌ها و بسته‌ها", NameEn: "Bundles & Sets", Slug: "bundles", Icon: "gift", ProductCount: 0},
	}
}

func seedBrands() []models.Brand {
	return []models.Brand{
		{ID: "brand-1", Name: "بیوتی اند گلو", NameEn: "Beauty & Glow", Slug: "beauty-glow", Description: strPtr("برند فاخر ایرانی - محصولات پریمیوم")},
		{ID: "brand-2", Name: "اسکین پیور", NameEn: "Skin Pure", Slug: "skin-pure", Description: strPtr("برند طبیعی و ارگانیک")},
		{ID: "brand-3", Name: "لوکس کوتور", NameEn: "Luxe Couture", Slug: "luxe-couture", Description: strPtr("برند بین‌المللی معروف")},
		{ID: "brand-4", Name: "نیچرز بست", NameEn: "Nature's Best", Slug: "natures-best", Description: strPtr("محصولات کره‌ای K-Beauty")},
		{ID: "brand-5", Name: "رادینس پرو", NameEn: "Radiance Pro", Slug: "radiance-pro", Description: strPtr("برند پروفشنال")},
		{ID: "brand-6", Name: "ارگانیک ادن", NameEn: "Organic Eden", Slug: "organic-eden", Description: strPtr("محصولات ۱۰۰٪ طبیعی")},
		{ID: "brand-7", Name: "مادرن اسنس", NameEn: "Modern Essence", Slug: "modern-essence", Description: strPtr("برند جدید و نوآور")},
		{ID: "brand-8", Name: "کلاسیک بیوتی", NameEn: "Classic Beauty", Slug: "classic-beauty", Description: strPtr("برند کلاسیک و معتبر")},
		{ID: "brand-9", Name: "گلو ساینس", NameEn: "Glow Science", Slug: "glow-science", Description: strPtr("برند محصولات علمی")},
		{ID: "brand-10", Name: "اکو بیوتی", NameEn: "Eco Beauty", Slug: "eco-beauty", Description: strPtr("حساس به محیط‌زیست")},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:               "prod-1",
			Name:             "پنکیک فاوندیشن مخملی",
			NameEn:           "Velvet Foundation Pancake",
			Slug:             "velvet-foundation-pancake",
			Description:      "پنکیک فاوندیشن با پوشش متوسط تا کامل، مناسب برای انواع پوست. این محصول با فرمول بی‌نظیر خود، پوست شما را صاف و یکدست می‌کند و تا ۱۲ ساعت ماندگاری دارد.",
			ShortDescription: strPtr("پوشش متوسط تا کامل، ماندگاری ۱۲ ساعته"),
			Price:            450000,
			OriginalPrice:    f64Ptr(550000),
			DiscountPercent:  18,
			CategoryID:       "makeup",
			BrandID:          "Beauty & Glow",
			Images:           []string{"https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=600"},
			Ingredients:      strPtr("تالک، اکسید آهن، دی‌متیکون، ویتامین E"),
			HowToUse:         strPtr("با اسفنج یا براش روی پوست بزنید"),
			Benefits:         strPtr("پوشش کامل، ماندگاری بالا، مناسب همه نوع پوست"),
			SkinType:         strPtr("همه انواع پوست"),
			Rating:           4.8,
			ReviewCount:      124,
			Stock:            50,
			IsBestSeller:     true,
			IsFeatured:       true,
		},
		{
			ID:               "prod-2",
			Name:             "سایه‌چشم پالت رنگی ۱۲ رنگ",
			NameEn:           "12-Color Eyeshadow Palette",
			Slug:             "12-color-eyeshadow-palette",
			Description:      "پالت سایه‌چشم با ۱۲ رنگ متنوع از مات تا شیمری. رنگدانه‌های بسیار قوی و بدون ریزش. مناسب برای آرایش روزانه و مجالس.",
			ShortDescription: strPtr("۱۲ رنگ متنوع، رنگدانه قوی"),
			Price:            680000,
			OriginalPrice:    f64Ptr(850000),
			DiscountPercent:  20,
			CategoryID:       "makeup",
			BrandID:          "Luxe Couture",
			Images:           []string{"https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=600"},
			Ingredients:      strPtr("میکا، اکسید آهن، سیلیکا"),
			HowToUse:         strPtr("با براش سایه روی پلک بزنید"),
			Benefits:         strPtr("ماندگاری بالا، رنگدانه قوی، بدون ریزش"),
			Rating:           4.6,
			ReviewCount:      89,
			Stock:            30,
			IsNew:            true,
			IsBestSeller:     true,
		},
		{
			ID:               "prod-3",
			Name:             "رژلب مات ابریشمی",
			NameEn:           "Silky Matte Lipstick",
			Slug:             "silky-matte-lipstick",
			Description:      "رژلب مات با فرمول ابریشمی که لب‌ها را نرم نگه می‌دارد. رنگدانه فوق‌العاده و ماندگاری تا ۸ ساعت بدون خشکی.",
			ShortDescription: strPtr("مات ابریشمی، بدون خشکی"),
			Price:            320000,
			DiscountPercent:  0,
			CategoryID:       "makeup",
			BrandID:          "Radiance Pro",
			Images:           []string{"https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=600"},
			Ingredients:      strPtr("روغن جوجوبا، ویتامین E، موم زنبور عسل"),
			HowToUse:         strPtr("مستقیماً روی لب بمالید"),
			Benefits:         strPtr("مات بدون خشکی، مرطوب‌کننده، ماندگار"),
			Rating:           4.9,
			ReviewCount:      256,
			Stock:            100,
			IsBestSeller:     true,
			IsFeatured:       true,
		},
		{
			ID:               "prod-4",
			Name:             "ماسک صورت ورقه‌ای هیالورونیک",
			NameEn:           "Hyaluronic Sheet Mask",
			Slug:             "hyaluronic-sheet-mask",
			Description:      "ماسک ورقه‌ای با عصاره هیالورونیک اسید برای آبرسانی عمیق پوست. پوست شما را در عرض ۱۵ دقیقه شاداب و درخشان می‌کند.",
			ShortDescription: strPtr("آبرسانی عمیق، نتیجه فوری"),
			Price:            85000,
			OriginalPrice:    f64Ptr(100000),
			DiscountPercent:  15,
			CategoryID:       "skincare",
			BrandID:          "Nature's Best",
			Images:           []string{"https://images.unsplash.com/photo-1596755389378-c31d21fd1273?w=600"},
			Ingredients:      strPtr("هیالورونیک اسید، عصاره آلوئه‌ورا، نیاسینامید"),
			HowToUse:         strPtr("روی صورت تمیز قرار دهید و ۱۵-۲۰ دقیقه صبر کنید"),
			Benefits:         strPtr("آبرسانی، روشن‌کنندگی، ضدچروک"),
			SkinType:         strPtr("همه انواع پوست"),
			Rating:           4.7,
			ReviewCount:      312,
			Stock:            200,
			IsNew:            true,
			IsBestSeller:     true,
		},
		{
			ID:               "prod-5",
			Name:             "شامپو کراتین ترمیم‌کننده",
			NameEn:           "Keratin Repair Shampoo",
			Slug:             "keratin-repair-shampoo",
			Description:      "شامپو کراتین برای موهای آسیب‌دیده و خشک. با فرمول منحصر به فرد، موهای شما را از ریشه تا نوک تقویت و ترمیم می‌کند.",
			ShortDescription: strPtr("ترمیم و تقویت موهای آسیب‌دیده"),
			Price:            280000,
			OriginalPrice:    f64Ptr(350000),
			DiscountPercent:  20,
			CategoryID:       "haircare",
			BrandID:          "Skin Pure",
			Images:           []string{"https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=600"},
			Ingredients:      strPtr("کراتین، پروتئین گندم، پانتنول"),
			HowToUse:         strPtr("روی موی خیس ماساژ دهید و آبکشی کنید"),
			Benefits:         strPtr("ترمیم، تقویت، درخشندگی"),
			Rating:           4.5,
			ReviewCount:      178,
			Stock:            80,
			IsBestSeller:     true,
		},
		{
			ID:               "prod-6",
			Name:             "سرم ویتامین C روشن‌کننده",
			NameEn:           "Vitamin C Brightening Serum",
			Slug:             "vitamin-c-brightening-serum",
			Description:      "سرم ویتامین C با غلظت ۲۰٪ برای روشن کردن پوست و کاهش لک‌های تیره. با فرمول پایدار و جذب سریع.",
			ShortDescription: strPtr("روشن‌کنندگی و ضدلک"),
			Price:            520000,
			OriginalPrice:    f64Ptr(650000),
			DiscountPercent:  20,
			CategoryID:       "skincare",
			BrandID:          "Glow Science",
			Images:           []string{"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=600"},
			Ingredients:      strPtr("ویتامین C ۲۰٪، فرولیک اسید، ویتامین E"),
			HowToUse:         strPtr("صبح‌ها بعد از تونر روی پوست بزنید"),
			Benefits:         strPtr("روشن‌کنندگی، ضدلک، آنتی‌اکسیدان"),
			SkinType:         strPtr("همه انواع پوست"),
			Rating:           4.9,
			ReviewCount:      445,
			Stock:            45,
			IsBestSeller:     true,
			IsFeatured:       true,
		},
		{
			ID:               "prod-7",
			Name:             "عطر زنانه فلورال لوکس",
			NameEn:           "Floral Luxe Women's Perfume",
			Slug:             "floral-luxe-womens-perfume",
			Description:      "عطر زنانه با رایحه گل‌های بهاری و نت‌های چوبی. ماندگاری بالا و پخش بوی عالی. مناسب برای استفاده روزانه و مجالس.",
			ShortDescription: strPtr("رایحه گلی-چوبی، ماندگاری بالا"),
			Price:            1200000,
			OriginalPrice:    f64Ptr(1500000),
			DiscountPercent:  20,
			CategoryID:       "fragrance",
			BrandID:          "Luxe Couture",
			Images:           []string{"https://images.unsplash.com/photo-1541643600914-78b084683601?w=600"},
			Ingredients:      strPtr("اسانس گل رز، یاسمن، صندل"),
			HowToUse:         strPtr("روی نقاط تپش قلب اسپری کنید"),
			Benefits:         strPtr("ماندگاری بالا، رایحه منحصر به فرد"),
			Rating:           4.8,
			ReviewCount:      167,
			Stock:            25,
			IsNew:            true,
			IsFeatured:       true,
		},
		{
			ID:               "prod-8",
			Name:             "دئودورانت طبیعی آلوئه‌ورا",
			NameEn:           "Natural Aloe Vera Deodorant",
			Slug:             "natural-aloe-vera-deodorant",
			Description:      "دئودورانت طبیعی با عصاره آلوئه‌ورا و بدون آلومینیوم. ۲۴ ساعت محافظت با رایحه ملایم و طبیعی.",
			ShortDescription: strPtr("بدون آلومینیوم، ۲۴ ساعت محافظت"),
			Price:            180000,
			DiscountPercent:  0,
			CategoryID:       "personal-care",
			BrandID:          "Organic Eden",
			Images:           []string{"https://images.unsplash.com/photo-1608248597279-f99d160bfcbc?w=600"},
			Ingredients:      strPtr("عصاره آلوئه‌ورا، روغن نارگیل، بی‌کینگ سودا"),
			HowToUse:         strPtr("روی پوست تمیز زیر بغل بزنید"),
			Benefits:         strPtr("ضدتعریق طبیعی، مناسب پوست حساس"),
			SkinType:         strPtr("حساس"),
			Rating:           4.4,
			ReviewCount:      98,
			Stock:            120,
		},
		{
			ID:               "prod-9",
			Name:             "کرم شب ضدچروک و جوان‌کننده",
			NameEn:           "Anti-Aging Night Cream",
			Slug:             "anti-aging-night-cream",
			Description:      "کرم شب با فرمول پیشرفته حاوی رتینول و پپتیدها برای کاهش چروک و افزایش کلاژن پوست. نتایج قابل مشاهده در ۴ هفته.",
			ShortDescription: strPtr("ضدچروک، جوان‌کننده"),
			Price:            780000,
			OriginalPrice:    f64Ptr(950000),
			DiscountPercent:  18,
			CategoryID:       "skincare",
			BrandID:          "Beauty & Glow",
			Images:           []string{"https://images.unsplash.com/photo-1570194065650-d99fb4b38b15?w=600"},
			Ingredients:      strPtr("رتینول، پپتید، هیالورونیک اسید"),
			HowToUse:         strPtr("شب‌ها روی پوست تمیز بزنید"),
			Benefits:         strPtr("کاهش چروک، افزایش کلاژن، سفتی پوست"),
			SkinType:         strPtr("بالغ"),
			Rating:           4.7,
			ReviewCount:      234,
			Stock:            35,
			IsBestSeller:     true,
			IsFeatured:       true,
		},
		{
			ID:               "prod-10",
			Name:             "ست براش آرایشی ۷ عددی",
			NameEn:           "7-Piece Makeup Brush Set",
			Slug:             "7-piece-makeup-brush-set",
			Description:      "ست کامل براش آرایشی شامل ۷ قلم‌مو حرفه‌ای با موی نرم و دسته ارگونومیک. مناسب برای آرایش کامل صورت.",
			ShortDescription: strPtr("۷ براش حرفه‌ای، موی نرم"),
			Price:            420000,
			OriginalPrice:    f64Ptr(520000),
			DiscountPercent:  19,
			CategoryID:       "tools",
			BrandID:          "Modern Essence",
			Images:           []string{"https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?w=600"},
			HowToUse:         strPtr("هر براش را برای ناحیه مشخص شده استفاده کنید"),
			Benefits:         strPtr("موی نرم، دسته راحت، کیفیت بالا"),
			Rating:           4.6,
			ReviewCount:      145,
			Stock:            60,
			IsNew:            true,
		},
		{
			ID:               "prod-11",
			Name:             "روغن نارگیل خالص ارگانیک",
			NameEn:           "Pure Organic Coconut Oil",
			Slug:             "pure-organic-coconut-oil",
			Description:      "روغن نارگیل ۱۰۰٪ خالص و ارگانیک. مناسب برای مراقبت از پوست، مو و ناخن. بدون افزودنی و مواد شیمیایی.",
			ShortDescription: strPtr("۱۰۰٪ خالص و ارگانیک"),
			Price:            250000,
			DiscountPercent:  0,
			CategoryID:       "natural",
			BrandID:          "Eco Beauty",
			Images:           []string{"https://images.unsplash.com/photo-1526947425960-945c6e72858f?w=600"},
			Ingredients:      strPtr("روغن نارگیل فرابکر ۱۰۰٪"),
			HowToUse:         strPtr("به صورت موضعی روی پوست یا مو بمالید"),
			Benefits:         strPtr("مرطوب‌کننده، تقویت‌کننده، چندمنظوره"),
			SkinType:         strPtr("همه انواع پوست"),
			Rating:           4.8,
			ReviewCount:      289,
			Stock:            150,
			IsBestSeller:     true,
		},
		{
			ID:               "prod-12",
			Name:             "تونر ملایم بدون الکل",
			NameEn:           "Alcohol-Free Gentle Toner",
			Slug:             "alcohol-free-gentle-toner",
			Description:      "تونر ملایم و بدون الکل برای تنظیم pH پوست و آماده‌سازی برای مراقبت. مناسب برای پوست‌های حساس.",
			ShortDescription: strPtr("بدون الکل، مناسب پوست حساس"),
			Price:            195000,
			OriginalPrice:    f64Ptr(230000),
			DiscountPercent:  15,
			CategoryID:       "skincare",
			BrandID:          "Skin Pure",
			Images:           []string{"https://images.unsplash.com/photo-1556228720-195a672e8a03?w=600"},
			Ingredients:      strPtr("آب گل رز، هیالورونیک اسید، نیاسینامید"),
			HowToUse:         strPtr("بعد از شستشو روی پوست بزنید"),
			Benefits:         strPtr("تنظیم pH، آبرسانی، آرامش‌بخش"),
			SkinType:         strPtr("حساس"),
			Rating:           4.5,
			ReviewCount:      156,
			Stock:            90,
		},
		{
			ID:               "prod-13",
			Name:             "لاک ناخن سریع‌خشک ۳۶ رنگ",
			NameEn:           "Quick-Dry Nail Polish",
			Slug:             "quick-dry-nail-polish",
			Description:      "لاک ناخن با فرمول سریع‌خشک در ۳۶ رنگ متنوع. بدون تولوئن و فرمالدئید. ماندگاری تا ۷ روز بدون ترک‌خوردگی.",
			ShortDescription: strPtr("سریع‌خشک، ۷ روز ماندگاری"),
			Price:            120000,
			DiscountPercent:  0,
			CategoryID:       "makeup",
			BrandID:          "Classic Beauty",
			Images:           []string{"https://images.unsplash.com/photo-1604654894610-df63bc536371?w=600"},
			Ingredients:      strPtr("رزین، نیتروسلولز"),
			HowToUse:         strPtr("دو لایه روی ناخن تمیز بزنید"),
			Benefits:         strPtr("سریع‌خشک، بدون مواد مضر، ماندگار"),
			Rating:           4.3,
			ReviewCount:      89,
			Stock:            300,
			IsNew:            true,
		},
		{
			ID:               "prod-14",
			Name:             "کرم دست و ناخن تقویتی",
			NameEn:           "Strengthening Hand & Nail Cream",
			Slug:             "strengthening-hand-nail-cream",
			Description:      "کرم دست و ناخن با فرمول تقویتی حاوی کراتین و ویتامین E. دست‌های نرم و ناخن‌های محکم.",
			ShortDescription: strPtr("تقویت ناخن، نرمی دست"),
			Price:            165000,
			OriginalPrice:    f64Ptr(200000),
			DiscountPercent:  18,
			CategoryID:       "personal-care",
			BrandID:          "Radiance Pro",
			Images:           []string{"https://images.unsplash.com/photo-1608248597279-f99d160bfcbc?w=600"},
			Ingredients:      strPtr("کراتین، ویتامین E، شی‌باتر"),
			HowToUse:         strPtr("روی دست‌ها و ناخن‌ها ماساژ دهید"),
			Benefits:         strPtr("تقویت ناخن، نرم‌کنندگی، محافظت"),
			SkinType:         strPtr("همه انواع پوست"),
			Rating:           4.4,
			ReviewCount:      112,
			Stock:            85,
		},
		{
			ID:               "prod-15",
			Name:             "سرم مو حرارتی محافظ",
			NameEn:           "Heat Protection Hair Serum",
			Slug:             "heat-protection-hair-serum",
			Description:      "سرم محافظ مو در برابر حرارت سشوار و اتو. درخشندگی و نرمی مو را حفظ می‌کند و از آسیب‌های حرارتی جلوگیری می‌کند.",
			ShortDescription: strPtr("محافظ حرارتی، درخشان‌کننده"),
			Price:            295000,
			OriginalPrice:    f64Ptr(350000),
			DiscountPercent:  16,
			CategoryID:       "haircare",
			BrandID:          "Modern Essence",
			Images:           []string{"https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=600"},
			Ingredients:      strPtr("سیلیکون، آرگان اویل، ویتامین E"),
			HowToUse:         strPtr("قبل از استفاده از ابزار حرارتی روی مو بزنید"),
			Benefits:         strPtr("محافظت حرارتی، درخشندگی، ضدوز"),
			Rating:           4.6,
			ReviewCount:      178,
			Stock:            70,
			IsNew:            true,
			IsFeatured:       true,
		},
	}
}

func seedDiscountCodes() []models.DiscountCode {
	return []models.DiscountCode{
		{ID: "dc-1", Code: "DERMA10", DiscountPercent: 10, MaxUses: 100, UsedCount: 23, IsActive: true},
		{ID: "dc-2", Code: "DERMA20", DiscountPercent: 20, MaxUses: 50, UsedCount: 12, IsActive: true},
		{ID: "dc-3", Code: "WELCOME", DiscountPercent: 15, MaxUses: 200, UsedCount: 45, IsActive: true},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{ID: "rev-1", ProductID: "prod-1", UserName: "سارا م.", Rating: 5, Comment: "بهترین پنکیکی که تا حالا استفاده کردم. پوشش عالی داره!", Date: "2024-01-15"},
		{ID: "rev-2", ProductID: "prod-1", UserName: "مریم ک.", Rating: 4, Comment: "خوبه ولی یکم سنگینه روی پوست", Date: "2024-01-10"},
		{ID: "rev-3", ProductID: "prod-6", UserName: "زهرا ن.", Rating: 5, Comment: "سرم ویتامین C فوق‌العاده‌ست! لک‌هام کمتر شدن", Date: "2024-01-12"},
		{ID: "rev-4", ProductID: "prod-3", UserName: "نازنین ع.", Rating: 5, Comment: "رنگش خیلی قشنگه و اصلاً خشک نمیشه", Date: "2024-01-08"},
	}
}
