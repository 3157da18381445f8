package rules

import "regexp"

var (
	asyncStorage  = regexp.MustCompile(`AsyncStorage|@react-native-async-storage`)
	secureStorage = regexp.MustCompile(`SecureStore|Keychain|EncryptedSharedPreferences`)
	credential    = regexp.MustCompile(`(?i)token|jwt|auth.*storage`)

	networkCall     = regexp.MustCompile(`fetch|axios|netinfo|@react-native-community/netinfo`)
	offlineHandling = regexp.MustCompile(`offline|isConnected|netInfo|cache.*offline`)

	pushNotifications = regexp.MustCompile(`Notifications|pushNotification|Firebase\.messaging|PushNotificationIOS`)
	pushHandler       = regexp.MustCompile(`onNotification|addNotificationListener|notification\.open`)
)

var SecureStorage = Rule{
	ID:          "secure-storage",
	Category:    "Security",
	Description: "Credentials persisted through plain AsyncStorage.",
	Check: func(in *Input, report *Reporter) {
		if has(credential, in.Content) && has(asyncStorage, in.Content) && !has(secureStorage, in.Content) {
			report.Issue("Storing auth tokens in AsyncStorage (insecure). Use SecureStore (iOS) / EncryptedSharedPreferences (Android).")
		}
	},
}

var OfflineHandling = Rule{
	ID:          "offline-handling",
	Category:    "Offline",
	Description: "Network requests without connectivity handling.",
	Check: func(in *Input, report *Reporter) {
		if has(networkCall, in.Content) && !has(offlineHandling, in.Content) {
			report.Warn("Network requests detected without offline handling. Consider NetInfo for connection status.")
		}
	},
}

var PushHandler = Rule{
	ID:          "push-handler",
	Category:    "Push",
	Description: "Push notifications imported without a handler.",
	Check: func(in *Input, report *Reporter) {
		if has(pushNotifications, in.Content) && !has(pushHandler, in.Content) {
			report.Warn("Push notifications imported but no handler found. May miss notifications.")
		}
	},
}
