package sfmt

import "fmt"

// ieHandler binds an IE type to its codec routines. Entries without a
// parse routine are known by name only: such IEs are skipped when
// optional and fail the message when mandatory.
type ieHandler struct {
	name  string
	parse func(src *RawIE) (IE, error)
	build func(dst *RawIE, ie IE) error
}

// Name returns the catalog name of an IE type.
func Name(t Type) string {
	if h, ok := ieHandlers[t]; ok {
		return h.name
	}
	return fmt.Sprintf("UNKNOWN-%#x", uint8(t))
}

var ieHandlers = map[Type]ieHandler{
	IERepeatIndicator: {
		name:  "REPEAT-INDICATOR",
		parse: parseRepeatIndicator,
		build: buildRepeatIndicator,
	},
	IESendingComplete: {
		name:  "SENDING-COMPLETE",
		parse: parseSendingComplete,
		build: buildEmptySingleOctet,
	},
	IEDelimiterRequest: {
		name:  "DELIMITER-REQUEST",
		parse: parseDelimiterRequest,
		build: buildEmptySingleOctet,
	},
	IEUseTPUI: {
		name:  "USE-TPUI",
		parse: parseUseTPUI,
		build: buildEmptySingleOctet,
	},
	IEBasicService: {
		name:  "BASIC-SERVICE",
		parse: parseBasicService,
		build: buildBasicService,
	},
	IEReleaseReason: {
		name:  "RELEASE-REASON",
		parse: parseReleaseReason,
		build: buildReleaseReason,
	},
	IESignal: {
		name:  "SIGNAL",
		parse: parseSignal,
		build: buildSignal,
	},
	IETimerRestart: {
		name:  "TIMER-RESTART",
		parse: parseTimerRestart,
	},
	IETestHookControl: {
		name: "TEST-HOOK-CONTROL",
	},
	IESingleDisplay: {
		name:  "SINGLE-DISPLAY",
		parse: parseSingleDisplay,
		build: buildSingleDisplay,
	},
	IESingleKeypad: {
		name:  "SINGLE-KEYPAD",
		parse: parseSingleKeypad,
		build: buildSingleKeypad,
	},
	IEInfoType: {
		name:  "INFO-TYPE",
		parse: parseInfoType,
		build: buildInfoType,
	},
	IEIdentityType: {
		name:  "IDENTITY-TYPE",
		parse: parseIdentityType,
		build: buildIdentityType,
	},
	IEPortableIdentity: {
		name:  "PORTABLE-IDENTITY",
		parse: parsePortableIdentity,
		build: buildPortableIdentity,
	},
	IEFixedIdentity: {
		name:  "FIXED-IDENTITY",
		parse: parseFixedIdentity,
		build: buildFixedIdentity,
	},
	IELocationArea: {
		name:  "LOCATION-AREA",
		parse: parseLocationArea,
		build: buildLocationArea,
	},
	IENWKAssignedIdentity: {
		name: "NWK-ASSIGNED-IDENTITY",
	},
	IEAllocationType: {
		name:  "ALLOCATION-TYPE",
		parse: parseAllocationType,
		build: buildAllocationType,
	},
	IEAuthType: {
		name:  "AUTH-TYPE",
		parse: parseAuthType,
		build: buildAuthType,
	},
	IERAND: {
		name:  "RAND",
		parse: parseAuthValue,
		build: buildAuthValue,
	},
	IERES: {
		name:  "RES",
		parse: parseAuthRes,
		build: buildAuthRes,
	},
	IERS: {
		name:  "RS",
		parse: parseAuthValue,
		build: buildAuthValue,
	},
	IEIWUAttributes: {
		name: "IWU-ATTRIBUTES",
	},
	IECallAttributes: {
		name: "CALL-ATTRIBUTES",
	},
	IEServiceChangeInfo: {
		name:  "SERVICE-CHANGE-INFO",
		parse: parseServiceChangeInfo,
	},
	IEConnectionAttributes: {
		name: "CONNECTION-ATTRIBUTES",
	},
	IECipherInfo: {
		name:  "CIPHER-INFO",
		parse: parseCipherInfo,
		build: buildCipherInfo,
	},
	IECallIdentity: {
		name: "CALL-IDENTITY",
	},
	IEConnectionIdentity: {
		name: "CONNECTION-IDENTITY",
	},
	IEFacility: {
		name:  "FACILITY",
		parse: parseFacility,
	},
	IEProgressIndicator: {
		name:  "PROGRESS-INDICATOR",
		parse: parseProgressIndicator,
		build: buildProgressIndicator,
	},
	IEMMSGenericHeader: {
		name: "MMS-GENERIC-HEADER",
	},
	IEMMSObjectHeader: {
		name: "MMS-OBJECT-HEADER",
	},
	IEMMSExtendedHeader: {
		name: "MMS-EXTENDED-HEADER",
	},
	IETimeDate: {
		name:  "TIME-DATE",
		parse: parseTimeDate,
		build: buildTimeDate,
	},
	IEMultiDisplay: {
		name:  "MULTI-DISPLAY",
		parse: parseMultiDisplay,
		build: buildMultiDisplay,
	},
	IEMultiKeypad: {
		name:  "MULTI-KEYPAD",
		parse: parseMultiKeypad,
		build: buildMultiKeypad,
	},
	IEFeatureActivate: {
		name:  "FEATURE-ACTIVATE",
		parse: parseFeatureActivate,
		build: buildFeatureActivate,
	},
	IEFeatureIndicate: {
		name:  "FEATURE-INDICATE",
		parse: parseFeatureIndicate,
	},
	IENetworkParameter: {
		name:  "NETWORK-PARAMETER",
		parse: parseNetworkParameter,
		build: buildNetworkParameter,
	},
	IEExtHOIndicator: {
		name: "EXT-H/O-INDICATOR",
	},
	IEZAPField: {
		name: "ZAP-FIELD",
	},
	IEServiceClass: {
		name: "SERVICE-CLASS",
	},
	IEKey: {
		name: "KEY",
	},
	IERejectReason: {
		name:  "REJECT-REASON",
		parse: parseRejectReason,
		build: buildRejectReason,
	},
	IESetupCapability: {
		name:  "SETUP-CAPABILITY",
		parse: parseSetupCapability,
		build: buildSetupCapability,
	},
	IETerminalCapability: {
		name:  "TERMINAL-CAPABILITY",
		parse: parseTerminalCapability,
		build: buildTerminalCapability,
	},
	IEEndToEndCompatibility: {
		name: "END-TO-END-COMPATIBILITY",
	},
	IERateParameters: {
		name: "RATE-PARAMETERS",
	},
	IETransitDelay: {
		name: "TRANSIT-DELAY",
	},
	IEWindowSize: {
		name: "WINDOW-SIZE",
	},
	IECallingPartyNumber: {
		name:  "CALLING-PARTY-NUMBER",
		parse: parseCallingPartyNumber,
		build: buildCallingPartyNumber,
	},
	IECallingPartyName: {
		name:  "CALLING-PARTY-NAME",
		parse: parseCallingPartyName,
		build: buildCallingPartyName,
	},
	IECalledPartyNumber: {
		name:  "CALLED-PARTY-NUMBER",
		parse: parseCalledPartyNumber,
		build: buildCalledPartyNumber,
	},
	IECalledPartySubaddr: {
		name: "CALLED-PARTY-SUBADDRESS",
	},
	IEDuration: {
		name:  "DURATION",
		parse: parseDuration,
		build: buildDuration,
	},
	IESegmentedInfo: {
		name: "SEGMENTED-INFO",
	},
	IEAlphanumeric: {
		name: "ALPHANUMERIC",
	},
	IEIWUToIWU: {
		name:  "IWU-TO-IWU",
		parse: parseIWUToIWU,
		build: buildIWUToIWU,
	},
	IEModelIdentifier: {
		name: "MODEL-IDENTIFIER",
	},
	IEIWUPacket: {
		name: "IWU-PACKET",
	},
	IEEscapeToProprietary: {
		name:  "ESCAPE-TO-PROPRIETARY",
		parse: parseEscapeToProprietary,
		build: buildEscapeToProprietary,
	},
	IECodecList: {
		name:  "CODEC-LIST",
		parse: parseCodecList,
		build: buildCodecList,
	},
	IEEventsNotification: {
		name:  "EVENTS-NOTIFICATION",
		build: buildEventsNotification,
	},
	IECallInformation: {
		name: "CALL-INFORMATION",
	},
	IEEscapeForExtension: {
		name: "ESCAPE-FOR-EXTENSION",
	},
}
