package i18n

// catalog maps language to message key to text. Keys are the error codes
// of domain errors plus the success codes used by handlers.
//
//nolint:gochecknoglobals
var catalog = map[string]map[string]string{
	"en": {
		"SHOP_NOT_FOUND":                "Shop not found",
		"SHOP_VALIDATION_FAILED":        "Shop details are invalid",
		"INVALID_CONTACT":               "Contact number must be exactly 10 digits",
		"IMAGE_COUNT_OUT_OF_RANGE":      "A shop needs between 2 and 3 images",
		"IMAGE_TOO_LARGE":               "Image exceeds the size limit",
		"IMAGE_INVALID":                 "Image is not valid embedded data",
		"IMAGE_LIMIT_REACHED":           "The shop already holds the maximum number of images",
		"INVALID_MODERATION_TRANSITION": "The shop is not awaiting review",
		"SHOP_NOT_APPROVED":             "Only approved shops can be changed this way",
		"INVALID_STATUS":                "Unknown moderation status",
		"REVIEW_VALIDATION_FAILED":      "Rating must be between 1 and 5 and the review text is required",
		"MESSAGE_NOT_FOUND":             "Message not found",
		"MESSAGE_VALIDATION_FAILED":     "Name, a valid email and a message are required",
		"DEVICE_ID_MISSING":             "A device identifier is required",
		"USER_NOT_FOUND":                "User not found",
		"USER_ALREADY_EXISTS":           "This email is already registered",
		"INVALID_CREDENTIALS":           "Email or password is incorrect",
		"PASSWORD_STRENGTH":             "Password is too short",
		"ID_TOKEN_INVALID":              "Sign-in token is invalid",
		"FEDERATED_LOGIN_DISABLED":      "Federated sign-in is not enabled",
		"EMAIL_NOT_VERIFIED":            "Verify your email address before signing in",
		"VALIDATION_FAILED":             "Input validation failed",
		"INTERNAL_ERROR":                "Internal server error",
		"DATABASE_EXECUTE_FAILED":       "Could not save your changes, please try again",
		"UNAUTHORIZED":                  "Sign-in required",
		"FORBIDDEN":                     "Access denied",

		"SHOP_SUBMITTED":  "Shop submitted for review",
		"SHOP_APPROVED":   "Shop approved",
		"SHOP_REJECTED":   "Shop rejected",
		"SHOP_UPDATED":    "Shop updated",
		"SHOP_DELETED":    "Shop deleted",
		"SHOP_LIKED":      "Added to your liked shops",
		"SHOP_UNLIKED":    "Removed from your liked shops",
		"REVIEW_ADDED":    "Thank you for your review",
		"MESSAGE_SENT":    "Your message has been sent",
		"MESSAGE_READ":    "Message marked as read",
		"MESSAGE_DELETED": "Message deleted",
		"SIGNED_IN":       "Signed in",
		"REGISTERED":      "Account created",
	},
	"gu": {
		"SHOP_NOT_FOUND":                "દુકાન મળી નથી",
		"SHOP_VALIDATION_FAILED":        "દુકાનની વિગતો અમાન્ય છે",
		"INVALID_CONTACT":               "સંપર્ક નંબર બરાબર 10 અંકનો હોવો જોઈએ",
		"IMAGE_COUNT_OUT_OF_RANGE":      "દુકાન માટે 2 થી 3 ફોટા જરૂરી છે",
		"IMAGE_TOO_LARGE":               "ફોટો કદ મર્યાદા કરતાં મોટો છે",
		"IMAGE_LIMIT_REACHED":           "દુકાનમાં પહેલેથી જ મહત્તમ ફોટા છે",
		"INVALID_MODERATION_TRANSITION": "આ દુકાન સમીક્ષા માટે બાકી નથી",
		"REVIEW_VALIDATION_FAILED":      "રેટિંગ 1 થી 5 વચ્ચે અને સમીક્ષા લખાણ જરૂરી છે",
		"MESSAGE_VALIDATION_FAILED":     "નામ, માન્ય ઇમેઇલ અને સંદેશ જરૂરી છે",
		"USER_ALREADY_EXISTS":           "આ ઇમેઇલ પહેલેથી નોંધાયેલ છે",
		"INVALID_CREDENTIALS":           "ઇમેઇલ અથવા પાસવર્ડ ખોટો છે",
		"UNAUTHORIZED":                  "સાઇન ઇન જરૂરી છે",
		"FORBIDDEN":                     "પ્રવેશ નકારવામાં આવ્યો",
		"INTERNAL_ERROR":                "આંતરિક સર્વર ભૂલ",

		"SHOP_SUBMITTED": "દુકાન સમીક્ષા માટે મોકલવામાં આવી",
		"SHOP_APPROVED":  "દુકાન મંજૂર થઈ",
		"SHOP_REJECTED":  "દુકાન નામંજૂર થઈ",
		"SHOP_DELETED":   "દુકાન કાઢી નાખવામાં આવી",
		"SHOP_LIKED":     "તમારી પસંદગીની દુકાનોમાં ઉમેર્યું",
		"SHOP_UNLIKED":   "તમારી પસંદગીની દુકાનોમાંથી દૂર કર્યું",
		"REVIEW_ADDED":   "તમારી સમીક્ષા બદલ આભાર",
		"MESSAGE_SENT":   "તમારો સંદેશ મોકલવામાં આવ્યો છે",
		"SIGNED_IN":      "સાઇન ઇન થયું",
		"REGISTERED":     "ખાતું બનાવવામાં આવ્યું",
	},
	"hi": {
		"SHOP_NOT_FOUND":                "दुकान नहीं मिली",
		"SHOP_VALIDATION_FAILED":        "दुकान का विवरण अमान्य है",
		"INVALID_CONTACT":               "संपर्क नंबर ठीक 10 अंकों का होना चाहिए",
		"IMAGE_COUNT_OUT_OF_RANGE":      "दुकान के लिए 2 से 3 फ़ोटो आवश्यक हैं",
		"IMAGE_TOO_LARGE":               "फ़ोटो आकार सीमा से बड़ी है",
		"IMAGE_LIMIT_REACHED":           "दुकान में पहले से अधिकतम फ़ोटो हैं",
		"INVALID_MODERATION_TRANSITION": "यह दुकान समीक्षा के लिए लंबित नहीं है",
		"REVIEW_VALIDATION_FAILED":      "रेटिंग 1 से 5 के बीच और समीक्षा पाठ आवश्यक है",
		"MESSAGE_VALIDATION_FAILED":     "नाम, मान्य ईमेल और संदेश आवश्यक हैं",
		"USER_ALREADY_EXISTS":           "यह ईमेल पहले से पंजीकृत है",
		"INVALID_CREDENTIALS":           "ईमेल या पासवर्ड गलत है",
		"UNAUTHORIZED":                  "साइन इन आवश्यक है",
		"FORBIDDEN":                     "पहुँच अस्वीकृत",
		"INTERNAL_ERROR":                "आंतरिक सर्वर त्रुटि",

		"SHOP_SUBMITTED": "दुकान समीक्षा के लिए भेजी गई",
		"SHOP_APPROVED":  "दुकान स्वीकृत",
		"SHOP_REJECTED":  "दुकान अस्वीकृत",
		"SHOP_DELETED":   "दुकान हटाई गई",
		"SHOP_LIKED":     "आपकी पसंदीदा दुकानों में जोड़ा गया",
		"SHOP_UNLIKED":   "आपकी पसंदीदा दुकानों से हटाया गया",
		"REVIEW_ADDED":   "आपकी समीक्षा के लिए धन्यवाद",
		"MESSAGE_SENT":   "आपका संदेश भेज दिया गया है",
		"SIGNED_IN":      "साइन इन हो गया",
		"REGISTERED":     "खाता बनाया गया",
	},
}
