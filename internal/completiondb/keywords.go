package completiondb

// keywordItems annotates the Keyword set from spec.md §4.4 with display
// strings. Arabic orthographic variants that differ only by hamza
// placement (او/أو, اذا/إذا, خطا/خطأ, لاجل/لأجل, والا/وإلا, اواذا/أوإذا)
// are both present in the lexer's keyword table and both get a catalog
// entry here, matching real-world Alif source where either spelling
// appears.
var keywordItems = []Item{
	{ArabicName: "ك", EnglishName: "as", ArabicDescription: "تستخدم لتسمية مستعار عند الاستيراد", Category: "import", UsageExample: "import x as y", ArabicExample: "استورد س ك ص"},
	{ArabicName: "و", EnglishName: "and", ArabicDescription: "عامل منطقي للربط بين شرطين", Category: "operator", UsageExample: "a and b", ArabicExample: "أ و ب"},
	{ArabicName: "في", EnglishName: "in", ArabicDescription: "اختبار عضوية أو تكرار عنصر", Category: "operator", Contexts: []ScopeKind{ScopeLoopBody}, UsageExample: "for x in items", ArabicExample: "لاجل س في القائمة"},
	{ArabicName: "او", EnglishName: "or", ArabicDescription: "عامل منطقي فصل بين شرطين", Category: "operator"},
	{ArabicName: "أو", EnglishName: "or", ArabicDescription: "عامل منطقي فصل بين شرطين", Category: "operator"},
	{ArabicName: "من", EnglishName: "from", ArabicDescription: "تحديد مصدر الاستيراد", Category: "import", Contexts: []ScopeKind{ScopeImport}, UsageExample: "from mod import name", ArabicExample: "من وحدة استورد اسم"},
	{ArabicName: "مع", EnglishName: "with", ArabicDescription: "إدارة سياق تلقائي لمورد", Category: "control-flow"},
	{ArabicName: "صح", EnglishName: "True", ArabicDescription: "القيمة المنطقية صحيح", Category: "literal", Tags: []string{"basic", "beginner"}},
	{ArabicName: "هل", EnglishName: "is", ArabicDescription: "اختبار الهوية بين قيمتين", Category: "operator"},
	{ArabicName: "اذا", EnglishName: "if", ArabicDescription: "تفرع شرطي", Category: "control-flow", Tags: []string{"basic", "beginner"}, UsageExample: "if (cond) { }", ArabicExample: "اذا (الشرط) { }"},
	{ArabicName: "إذا", EnglishName: "if", ArabicDescription: "تفرع شرطي", Category: "control-flow", Tags: []string{"basic", "beginner"}},
	{ArabicName: "ليس", EnglishName: "not", ArabicDescription: "نفي منطقي", Category: "operator"},
	{ArabicName: "مرر", EnglishName: "pass", ArabicDescription: "عبارة لا تفعل شيئا، تستخدم كحشو", Category: "control-flow"},
	{ArabicName: "عدم", EnglishName: "None", ArabicDescription: "القيمة الخالية", Category: "literal", Tags: []string{"basic", "beginner"}},
	{ArabicName: "ولد", EnglishName: "yield", ArabicDescription: "إرجاع قيمة من مولد دون إنهائه", Category: "control-flow", Contexts: []ScopeKind{ScopeFunctionBody}},
	{ArabicName: "صنف", EnglishName: "class", ArabicDescription: "تعريف صنف جديد", Category: "declaration", Tags: []string{"basic"}, UsageExample: "class Name { }", ArabicExample: "صنف الاسم { }"},
	{ArabicName: "خطا", EnglishName: "False", ArabicDescription: "القيمة المنطقية خطأ", Category: "literal", Tags: []string{"basic", "beginner"}},
	{ArabicName: "خطأ", EnglishName: "False", ArabicDescription: "القيمة المنطقية خطأ", Category: "literal", Tags: []string{"basic", "beginner"}},
	{ArabicName: "عام", EnglishName: "global", ArabicDescription: "الإشارة إلى متغير من النطاق العام", Category: "declaration", Contexts: []ScopeKind{ScopeFunctionBody}},
	{ArabicName: "احذف", EnglishName: "del", ArabicDescription: "حذف اسم أو عنصر", Category: "statement"},
	{ArabicName: "دالة", EnglishName: "def", ArabicDescription: "تعريف دالة جديدة", Category: "declaration", Tags: []string{"basic", "beginner"}, UsageExample: "def name() { }", ArabicExample: "دالة الاسم() { }"},
	{ArabicName: "لاجل", EnglishName: "for", ArabicDescription: "حلقة تكرارية على عناصر متسلسلة", Category: "control-flow", Tags: []string{"basic", "beginner"}, UsageExample: "for x in range(10) { }", ArabicExample: "لاجل س في مدى(10) { }"},
	{ArabicName: "لأجل", EnglishName: "for", ArabicDescription: "حلقة تكرارية على عناصر متسلسلة", Category: "control-flow", Tags: []string{"basic", "beginner"}},
	{ArabicName: "والا", EnglishName: "else", ArabicDescription: "الفرع البديل لتفرع شرطي أو حلقة", Category: "control-flow", Tags: []string{"basic"}, Contexts: []ScopeKind{ScopeIfCondition}},
	{ArabicName: "وإلا", EnglishName: "else", ArabicDescription: "الفرع البديل لتفرع شرطي أو حلقة", Category: "control-flow", Tags: []string{"basic"}, Contexts: []ScopeKind{ScopeIfCondition}},
	{ArabicName: "توقف", EnglishName: "break", ArabicDescription: "الخروج من الحلقة الحالية", Category: "control-flow", Contexts: []ScopeKind{ScopeLoopBody}},
	{ArabicName: "نطاق", EnglishName: "nonlocal", ArabicDescription: "الإشارة إلى متغير من نطاق محيط", Category: "declaration", Contexts: []ScopeKind{ScopeFunctionBody}},
	{ArabicName: "ارجع", EnglishName: "return", ArabicDescription: "إرجاع قيمة من الدالة وإنهاؤها", Category: "control-flow", Tags: []string{"basic", "beginner"}, Contexts: []ScopeKind{ScopeFunctionBody}, UsageExample: "return value", ArabicExample: "ارجع القيمة"},
	{ArabicName: "اواذا", EnglishName: "elif", ArabicDescription: "فرع شرطي إضافي", Category: "control-flow", Contexts: []ScopeKind{ScopeIfCondition}},
	{ArabicName: "أوإذا", EnglishName: "elif", ArabicDescription: "فرع شرطي إضافي", Category: "control-flow", Contexts: []ScopeKind{ScopeIfCondition}},
	{ArabicName: "بينما", EnglishName: "while", ArabicDescription: "حلقة تكرارية شرطية", Category: "control-flow", Tags: []string{"basic", "beginner"}, UsageExample: "while (cond) { }", ArabicExample: "بينما (الشرط) { }"},
	{ArabicName: "انتظر", EnglishName: "await", ArabicDescription: "انتظار نتيجة مهمة غير متزامنة", Category: "async", Contexts: []ScopeKind{ScopeFunctionBody}},
	{ArabicName: "استمر", EnglishName: "continue", ArabicDescription: "الانتقال إلى التكرار التالي في الحلقة", Category: "control-flow", Contexts: []ScopeKind{ScopeLoopBody}},
	{ArabicName: "مزامنة", EnglishName: "async", ArabicDescription: "تعريف دالة غير متزامنة", Category: "async"},
	{ArabicName: "استورد", EnglishName: "import", ArabicDescription: "استيراد وحدة أو اسم من وحدة", Category: "import", Contexts: []ScopeKind{ScopeImport}, Tags: []string{"basic"}, UsageExample: "import module", ArabicExample: "استورد وحدة"},
	{ArabicName: "حاول", EnglishName: "try", ArabicDescription: "بداية كتلة معالجة الأخطاء", Category: "control-flow"},
	{ArabicName: "خلل", EnglishName: "except", ArabicDescription: "التقاط خطأ من كتلة حاول", Category: "control-flow"},
	{ArabicName: "نهاية", EnglishName: "finally", ArabicDescription: "كتلة تنفذ دائما بعد حاول/خلل", Category: "control-flow"},
}

// builtinItems annotates the Keyword1 (built-in function) set.
var builtinItems = []Item{
	{
		ArabicName: "اطبع", EnglishName: "print", Kind: KindFunction, Category: "io",
		ArabicDescription:         "طباعة قيمة إلى الخرج",
		ArabicDetailedDescription: "تطبع واحدة أو أكثر من القيم إلى الخرج القياسي، مفصولة بمسافة وتنتهي بسطر جديد",
		UsageExample:              `print("hello")`, ArabicExample: `اطبع("مرحبا")`,
		Parameters: []Parameter{{Name: "value", Type: "any", ArabicDescription: "القيمة المراد طباعتها"}},
		ReturnType: "None", ArabicReturnDesc: "لا ترجع قيمة",
		Priority: 90, Tags: []string{"basic", "beginner"},
	},
	{
		ArabicName: "ادخل", EnglishName: "input", Kind: KindFunction, Category: "io",
		ArabicDescription:         "قراءة سطر نصي من المدخل القياسي",
		ArabicDetailedDescription: "تعرض رسالة اختيارية ثم تقرأ سطرا واحدا من المدخل وترجعه كنص",
		UsageExample:              `name = input("اسمك: ")`, ArabicExample: `الاسم = ادخل("اسمك: ")`,
		Parameters: []Parameter{{Name: "prompt", Type: "str", ArabicDescription: "نص الرسالة المعروضة", IsOptional: true, DefaultValue: `""`}},
		ReturnType: "str", ArabicReturnDesc: "النص المدخل من المستخدم",
		Priority: 85, Tags: []string{"basic", "beginner"},
	},
	{
		ArabicName: "مدى", EnglishName: "range", Kind: KindFunction, Category: "iteration",
		ArabicDescription:         "إنشاء متسلسلة أعداد صحيحة",
		ArabicDetailedDescription: "تنتج متسلسلة أعداد من بداية إلى نهاية بخطوة معينة، تستخدم غالبا مع لاجل",
		UsageExample:              `for i in range(10) { }`, ArabicExample: `لاجل ع في مدى(10) { }`,
		Parameters: []Parameter{
			{Name: "stop", Type: "int", ArabicDescription: "حد النهاية (غير شامل)"},
			{Name: "start", Type: "int", ArabicDescription: "حد البداية", IsOptional: true, DefaultValue: "0"},
			{Name: "step", Type: "int", ArabicDescription: "مقدار الخطوة", IsOptional: true, DefaultValue: "1"},
		},
		ReturnType: "range", ArabicReturnDesc: "متسلسلة قابلة للتكرار",
		Priority: 88, Contexts: []ScopeKind{ScopeLoopBody, ScopeFunctionCall}, Tags: []string{"basic"},
	},
}

// specialIdentifierItems annotates the Keyword2 set.
var specialIdentifierItems = []Item{
	{
		ArabicName: "_تهيئة_", EnglishName: "__init__", Kind: KindMethod, Category: "oop",
		ArabicDescription: "دالة التهيئة الخاصة بالصنف، تنفذ عند إنشاء كائن جديد",
		Contexts:          []ScopeKind{ScopeClassBody}, Priority: 70,
		UsageExample: "def __init__(self) { }", ArabicExample: "دالة _تهيئة_(هذا) { }",
	},
	{
		ArabicName: "هذا", EnglishName: "self", Kind: KindVariable, Category: "oop",
		ArabicDescription: "مرجع إلى الكائن الحالي داخل الصنف",
		Contexts:          []ScopeKind{ScopeClassBody, ScopeFunctionBody}, Priority: 75, Tags: []string{"basic"},
	},
	{
		ArabicName: "اصل", EnglishName: "super", Kind: KindFunction, Category: "oop",
		ArabicDescription: "الوصول إلى الصنف الأب",
		Contexts:          []ScopeKind{ScopeClassBody}, Priority: 65,
		UsageExample: "super().__init__()", ArabicExample: "اصل()._تهيئة_()",
	},
}
