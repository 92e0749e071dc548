package ast

// Tag identifies the grammar production an AST node was built from. The set
// is closed: one constant per nonterminal and terminal in the AML grammar,
// so downstream consumers can switch over it exhaustively.
type Tag uint16

const (
	TagAMLCode Tag = iota
	TagDefBlockHeader
	TagTableSignature
	TagTableLength
	TagSpecCompliance
	TagChecksum
	TagOEMID
	TagOEMTableID
	TagOEMRevision
	TagCreatorID
	TagCreatorRevision
	TagRootChar
	TagNameSeg
	TagNameString
	TagPrefixPath
	TagNamePath
	TagDualNamePath
	TagMultiNamePath
	TagSegCount
	TagSimpleName
	TagSuperName
	TagNullName
	TagTarget
	TagComputationalData
	TagDataObject
	TagDataRefObject
	TagByteConst
	TagBytePrefix
	TagWordConst
	TagWordPrefix
	TagDWordConst
	TagDWordPrefix
	TagQWordConst
	TagQWordPrefix
	TagString
	TagStringPrefix
	TagConstObj
	TagByteList
	TagByteData
	TagWordData
	TagDWordData
	TagQWordData
	TagASCIICharList
	TagASCIIChar
	TagNullChar
	TagZeroOp
	TagOneOp
	TagOnesOp
	TagRevisionOp
	TagPkgLength
	TagPkgLeadByte
	TagObject
	TagTermObj
	TagTermList
	TagTermArg
	TagMethodInvocation
	TagTermArgList
	TagNamespaceModifierObj
	TagDefAlias
	TagDefName
	TagDefScope
	TagNamedObj
	TagDefBankField
	TagBankValue
	TagFieldFlags
	TagFieldList
	TagNamedField
	TagReservedField
	TagAccessField
	TagAccessType
	TagAccessAttrib
	TagConnectField
	TagDefCreateBitField
	TagCreateBitFieldOp
	TagSourceBuff
	TagBitIndex
	TagDefCreateByteField
	TagCreateByteFieldOp
	TagByteIndex
	TagDefCreateDWordField
	TagCreateDWordFieldOp
	TagDefCreateField
	TagCreateFieldOp
	TagNumBits
	TagDefCreateQWordField
	TagCreateQWordFieldOp
	TagDefCreateWordField
	TagCreateWordFieldOp
	TagDefDataRegion
	TagDataRegionOp
	TagDefDevice
	TagDeviceOp
	TagDefEvent
	TagEventOp
	TagDefExternal
	TagExternalOp
	TagObjectType
	TagArgumentCount
	TagDefField
	TagFieldOp
	TagDefIndexField
	TagIndexFieldOp
	TagDefMethod
	TagMethodOp
	TagMethodFlags
	TagDefMutex
	TagMutexOp
	TagSyncFlags
	TagDefOpRegion
	TagOpRegionOp
	TagRegionSpace
	TagRegionOffset
	TagRegionLen
	TagDefPowerRes
	TagPowerResOp
	TagSystemLevel
	TagResourceOrder
	TagDefProcessor
	TagProcessorOp
	TagProcID
	TagPblkAddr
	TagPblkLen
	TagDefThermalZone
	TagThermalZoneOp
	TagExtendedAccessField
	TagExtendedAccessAttrib
	TagFieldElement
	TagType1Opcode
	TagDefBreak
	TagDefBreakpoint
	TagDefContinue
	TagDefElse
	TagDefFatal
	TagFatalOp
	TagFatalType
	TagFatalCode
	TagFatalArg
	TagDefIfElse
	TagPredicate
	TagDefLoad
	TagLoadOp
	TagDDBHandleObject
	TagDefNoop
	TagDefNotify
	TagNotifyOp
	TagNotifyObject
	TagNotifyValue
	TagDefRelease
	TagReleaseOp
	TagMutexObject
	TagDefReset
	TagResetOp
	TagEventObject
	TagDefReturn
	TagReturnOp
	TagArgObject
	TagDefSignal
	TagSignalOp
	TagDefSleep
	TagSleepOp
	TagMsecTime
	TagDefStall
	TagStallOp
	TagUsecTime
	TagDefWhile
	TagWhileOp
	TagType2Opcode
	TagType6Opcode
	TagDefAcquire
	TagAcquireOp
	TagTimeout
	TagDefAdd
	TagAddOp
	TagOperand
	TagDefAnd
	TagAndOp
	TagDefBuffer
	TagBufferOp
	TagBufferSize
	TagDefConcat
	TagConcatOp
	TagData
	TagDefConcatRes
	TagConcatResOp
	TagBufData
	TagDefCondRefOf
	TagCondRefOfOp
	TagDefCopyObject
	TagCopyObjectOp
	TagDefDecrement
	TagDecrementOp
	TagDefDerefOf
	TagDerefOfOp
	TagObjReference
	TagDefDivide
	TagDivideOp
	TagDividend
	TagDivisor
	TagRemainder
	TagQuotient
	TagDefFindSetLeftBit
	TagFindSetLeftBitOp
	TagDefFindSetRightBit
	TagFindSetRightBitOp
	TagDefFromBCD
	TagFromBCDOp
	TagBCDValue
	TagDefIncrement
	TagIncrementOp
	TagDefIndex
	TagIndexOp
	TagBuffPkgStrObj
	TagIndexValue
	TagDefLAnd
	TagLAndOp
	TagDefLEqual
	TagLEqualOp
	TagDefLGreater
	TagLGreaterOp
	TagDefLGreaterEqual
	TagLGreaterEqualOp
	TagDefLLess
	TagLLessOp
	TagDefLLessEqual
	TagLLessEqualOp
	TagDefLNot
	TagLNotOp
	TagDefLNotEqual
	TagLNotEqualOp
	TagDefLoadTable
	TagLoadTableOp
	TagDefLOr
	TagLOrOp
	TagDefMatch
	TagMatchOp
	TagSearchPkg
	TagMatchOpcode
	TagStartIndex
	TagDefMid
	TagMidOp
	TagMidObj
	TagDefMod
	TagModOp
	TagDefMultiply
	TagMultiplyOp
	TagDefNAnd
	TagNAndOp
	TagDefNOr
	TagNOrOp
	TagDefNot
	TagNotOp
	TagDefObjectType
	TagObjectTypeOp
	TagDefOr
	TagOrOp
	TagDefPackage
	TagPackageOp
	TagDefVarPackage
	TagVarPackageOp
	TagNumElements
	TagVarNumElements
	TagPackageElementList
	TagPackageElement
	TagDefRefOf
	TagRefOfOp
	TagDefShiftLeft
	TagShiftLeftOp
	TagShiftCount
	TagDefShiftRight
	TagShiftRightOp
	TagDefSizeOf
	TagSizeOfOp
	TagDefStore
	TagStoreOp
	TagDefSubtract
	TagSubtractOp
	TagDefTimer
	TagTimerOp
	TagDefToBCD
	TagToBCDOp
	TagDefToBuffer
	TagToBufferOp
	TagDefToDecimalString
	TagToDecimalStringOp
	TagDefToHexString
	TagToHexStringOp
	TagDefToInteger
	TagToIntegerOp
	TagDefToString
	TagLengthArg
	TagToStringOp
	TagDefWait
	TagWaitOp
	TagDefXOr
	TagXOrOp
	TagArgObj
	TagArg0Op
	TagArg1Op
	TagArg2Op
	TagArg3Op
	TagArg4Op
	TagArg5Op
	TagArg6Op
	TagLocalObj
	TagLocal0Op
	TagLocal1Op
	TagLocal2Op
	TagLocal3Op
	TagLocal4Op
	TagLocal5Op
	TagLocal6Op
	TagLocal7Op
	TagDebugObj
	TagDebugOp
)

var tagNames = [...]string{
	TagAMLCode:              "AMLCode",
	TagDefBlockHeader:       "DefBlockHeader",
	TagTableSignature:       "TableSignature",
	TagTableLength:          "TableLength",
	TagSpecCompliance:       "SpecCompliance",
	TagChecksum:             "Checksum",
	TagOEMID:                "OEMID",
	TagOEMTableID:           "OEMTableID",
	TagOEMRevision:          "OEMRevision",
	TagCreatorID:            "CreatorID",
	TagCreatorRevision:      "CreatorRevision",
	TagRootChar:             "RootChar",
	TagNameSeg:              "NameSeg",
	TagNameString:           "NameString",
	TagPrefixPath:           "PrefixPath",
	TagNamePath:             "NamePath",
	TagDualNamePath:         "DualNamePath",
	TagMultiNamePath:        "MultiNamePath",
	TagSegCount:             "SegCount",
	TagSimpleName:           "SimpleName",
	TagSuperName:            "SuperName",
	TagNullName:             "NullName",
	TagTarget:               "Target",
	TagComputationalData:    "ComputationalData",
	TagDataObject:           "DataObject",
	TagDataRefObject:        "DataRefObject",
	TagByteConst:            "ByteConst",
	TagBytePrefix:           "BytePrefix",
	TagWordConst:            "WordConst",
	TagWordPrefix:           "WordPrefix",
	TagDWordConst:           "DWordConst",
	TagDWordPrefix:          "DWordPrefix",
	TagQWordConst:           "QWordConst",
	TagQWordPrefix:          "QWordPrefix",
	TagString:               "String",
	TagStringPrefix:         "StringPrefix",
	TagConstObj:             "ConstObj",
	TagByteList:             "ByteList",
	TagByteData:             "ByteData",
	TagWordData:             "WordData",
	TagDWordData:            "DWordData",
	TagQWordData:            "QWordData",
	TagASCIICharList:        "ASCIICharList",
	TagASCIIChar:            "ASCIIChar",
	TagNullChar:             "NullChar",
	TagZeroOp:               "ZeroOp",
	TagOneOp:                "OneOp",
	TagOnesOp:               "OnesOp",
	TagRevisionOp:           "RevisionOp",
	TagPkgLength:            "PkgLength",
	TagPkgLeadByte:          "PkgLeadByte",
	TagObject:               "Object",
	TagTermObj:              "TermObj",
	TagTermList:             "TermList",
	TagTermArg:              "TermArg",
	TagMethodInvocation:     "MethodInvocation",
	TagTermArgList:          "TermArgList",
	TagNamespaceModifierObj: "NamespaceModifierObj",
	TagDefAlias:             "DefAlias",
	TagDefName:              "DefName",
	TagDefScope:             "DefScope",
	TagNamedObj:             "NamedObj",
	TagDefBankField:         "DefBankField",
	TagBankValue:            "BankValue",
	TagFieldFlags:           "FieldFlags",
	TagFieldList:            "FieldList",
	TagNamedField:           "NamedField",
	TagReservedField:        "ReservedField",
	TagAccessField:          "AccessField",
	TagAccessType:           "AccessType",
	TagAccessAttrib:         "AccessAttrib",
	TagConnectField:         "ConnectField",
	TagDefCreateBitField:    "DefCreateBitField",
	TagCreateBitFieldOp:     "CreateBitFieldOp",
	TagSourceBuff:           "SourceBuff",
	TagBitIndex:             "BitIndex",
	TagDefCreateByteField:   "DefCreateByteField",
	TagCreateByteFieldOp:    "CreateByteFieldOp",
	TagByteIndex:            "ByteIndex",
	TagDefCreateDWordField:  "DefCreateDWordField",
	TagCreateDWordFieldOp:   "CreateDWordFieldOp",
	TagDefCreateField:       "DefCreateField",
	TagCreateFieldOp:        "CreateFieldOp",
	TagNumBits:              "NumBits",
	TagDefCreateQWordField:  "DefCreateQWordField",
	TagCreateQWordFieldOp:   "CreateQWordFieldOp",
	TagDefCreateWordField:   "DefCreateWordField",
	TagCreateWordFieldOp:    "CreateWordFieldOp",
	TagDefDataRegion:        "DefDataRegion",
	TagDataRegionOp:         "DataRegionOp",
	TagDefDevice:            "DefDevice",
	TagDeviceOp:             "DeviceOp",
	TagDefEvent:             "DefEvent",
	TagEventOp:              "EventOp",
	TagDefExternal:          "DefExternal",
	TagExternalOp:           "ExternalOp",
	TagObjectType:           "ObjectType",
	TagArgumentCount:        "ArgumentCount",
	TagDefField:             "DefField",
	TagFieldOp:              "FieldOp",
	TagDefIndexField:        "DefIndexField",
	TagIndexFieldOp:         "IndexFieldOp",
	TagDefMethod:            "DefMethod",
	TagMethodOp:             "MethodOp",
	TagMethodFlags:          "MethodFlags",
	TagDefMutex:             "DefMutex",
	TagMutexOp:              "MutexOp",
	TagSyncFlags:            "SyncFlags",
	TagDefOpRegion:          "DefOpRegion",
	TagOpRegionOp:           "OpRegionOp",
	TagRegionSpace:          "RegionSpace",
	TagRegionOffset:         "RegionOffset",
	TagRegionLen:            "RegionLen",
	TagDefPowerRes:          "DefPowerRes",
	TagPowerResOp:           "PowerResOp",
	TagSystemLevel:          "SystemLevel",
	TagResourceOrder:        "ResourceOrder",
	TagDefProcessor:         "DefProcessor",
	TagProcessorOp:          "ProcessorOp",
	TagProcID:               "ProcID",
	TagPblkAddr:             "PblkAddr",
	TagPblkLen:              "PblkLen",
	TagDefThermalZone:       "DefThermalZone",
	TagThermalZoneOp:        "ThermalZoneOp",
	TagExtendedAccessField:  "ExtendedAccessField",
	TagExtendedAccessAttrib: "ExtendedAccessAttrib",
	TagFieldElement:         "FieldElement",
	TagType1Opcode:          "Type1Opcode",
	TagDefBreak:             "DefBreak",
	TagDefBreakpoint:        "DefBreakpoint",
	TagDefContinue:          "DefContinue",
	TagDefElse:              "DefElse",
	TagDefFatal:             "DefFatal",
	TagFatalOp:              "FatalOp",
	TagFatalType:            "FatalType",
	TagFatalCode:            "FatalCode",
	TagFatalArg:             "FatalArg",
	TagDefIfElse:            "DefIfElse",
	TagPredicate:            "Predicate",
	TagDefLoad:              "DefLoad",
	TagLoadOp:               "LoadOp",
	TagDDBHandleObject:      "DDBHandleObject",
	TagDefNoop:              "DefNoop",
	TagDefNotify:            "DefNotify",
	TagNotifyOp:             "NotifyOp",
	TagNotifyObject:         "NotifyObject",
	TagNotifyValue:          "NotifyValue",
	TagDefRelease:           "DefRelease",
	TagReleaseOp:            "ReleaseOp",
	TagMutexObject:          "MutexObject",
	TagDefReset:             "DefReset",
	TagResetOp:              "ResetOp",
	TagEventObject:          "EventObject",
	TagDefReturn:            "DefReturn",
	TagReturnOp:             "ReturnOp",
	TagArgObject:            "ArgObject",
	TagDefSignal:            "DefSignal",
	TagSignalOp:             "SignalOp",
	TagDefSleep:             "DefSleep",
	TagSleepOp:              "SleepOp",
	TagMsecTime:             "MsecTime",
	TagDefStall:             "DefStall",
	TagStallOp:              "StallOp",
	TagUsecTime:             "UsecTime",
	TagDefWhile:             "DefWhile",
	TagWhileOp:              "WhileOp",
	TagType2Opcode:          "Type2Opcode",
	TagType6Opcode:          "Type6Opcode",
	TagDefAcquire:           "DefAcquire",
	TagAcquireOp:            "AcquireOp",
	TagTimeout:              "Timeout",
	TagDefAdd:               "DefAdd",
	TagAddOp:                "AddOp",
	TagOperand:              "Operand",
	TagDefAnd:               "DefAnd",
	TagAndOp:                "AndOp",
	TagDefBuffer:            "DefBuffer",
	TagBufferOp:             "BufferOp",
	TagBufferSize:           "BufferSize",
	TagDefConcat:            "DefConcat",
	TagConcatOp:             "ConcatOp",
	TagData:                 "Data",
	TagDefConcatRes:         "DefConcatRes",
	TagConcatResOp:          "ConcatResOp",
	TagBufData:              "BufData",
	TagDefCondRefOf:         "DefCondRefOf",
	TagCondRefOfOp:          "CondRefOfOp",
	TagDefCopyObject:        "DefCopyObject",
	TagCopyObjectOp:         "CopyObjectOp",
	TagDefDecrement:         "DefDecrement",
	TagDecrementOp:          "DecrementOp",
	TagDefDerefOf:           "DefDerefOf",
	TagDerefOfOp:            "DerefOfOp",
	TagObjReference:         "ObjReference",
	TagDefDivide:            "DefDivide",
	TagDivideOp:             "DivideOp",
	TagDividend:             "Dividend",
	TagDivisor:              "Divisor",
	TagRemainder:            "Remainder",
	TagQuotient:             "Quotient",
	TagDefFindSetLeftBit:    "DefFindSetLeftBit",
	TagFindSetLeftBitOp:     "FindSetLeftBitOp",
	TagDefFindSetRightBit:   "DefFindSetRightBit",
	TagFindSetRightBitOp:    "FindSetRightBitOp",
	TagDefFromBCD:           "DefFromBCD",
	TagFromBCDOp:            "FromBCDOp",
	TagBCDValue:             "BCDValue",
	TagDefIncrement:         "DefIncrement",
	TagIncrementOp:          "IncrementOp",
	TagDefIndex:             "DefIndex",
	TagIndexOp:              "IndexOp",
	TagBuffPkgStrObj:        "BuffPkgStrObj",
	TagIndexValue:           "IndexValue",
	TagDefLAnd:              "DefLAnd",
	TagLAndOp:               "LAndOp",
	TagDefLEqual:            "DefLEqual",
	TagLEqualOp:             "LEqualOp",
	TagDefLGreater:          "DefLGreater",
	TagLGreaterOp:           "LGreaterOp",
	TagDefLGreaterEqual:     "DefLGreaterEqual",
	TagLGreaterEqualOp:      "LGreaterEqualOp",
	TagDefLLess:             "DefLLess",
	TagLLessOp:              "LLessOp",
	TagDefLLessEqual:        "DefLLessEqual",
	TagLLessEqualOp:         "LLessEqualOp",
	TagDefLNot:              "DefLNot",
	TagLNotOp:               "LNotOp",
	TagDefLNotEqual:         "DefLNotEqual",
	TagLNotEqualOp:          "LNotEqualOp",
	TagDefLoadTable:         "DefLoadTable",
	TagLoadTableOp:          "LoadTableOp",
	TagDefLOr:               "DefLOr",
	TagLOrOp:                "LOrOp",
	TagDefMatch:             "DefMatch",
	TagMatchOp:              "MatchOp",
	TagSearchPkg:            "SearchPkg",
	TagMatchOpcode:          "MatchOpcode",
	TagStartIndex:           "StartIndex",
	TagDefMid:               "DefMid",
	TagMidOp:                "MidOp",
	TagMidObj:               "MidObj",
	TagDefMod:               "DefMod",
	TagModOp:                "ModOp",
	TagDefMultiply:          "DefMultiply",
	TagMultiplyOp:           "MultiplyOp",
	TagDefNAnd:              "DefNAnd",
	TagNAndOp:               "NAndOp",
	TagDefNOr:               "DefNOr",
	TagNOrOp:                "NOrOp",
	TagDefNot:               "DefNot",
	TagNotOp:                "NotOp",
	TagDefObjectType:        "DefObjectType",
	TagObjectTypeOp:         "ObjectTypeOp",
	TagDefOr:                "DefOr",
	TagOrOp:                 "OrOp",
	TagDefPackage:           "DefPackage",
	TagPackageOp:            "PackageOp",
	TagDefVarPackage:        "DefVarPackage",
	TagVarPackageOp:         "VarPackageOp",
	TagNumElements:          "NumElements",
	TagVarNumElements:       "VarNumElements",
	TagPackageElementList:   "PackageElementList",
	TagPackageElement:       "PackageElement",
	TagDefRefOf:             "DefRefOf",
	TagRefOfOp:              "RefOfOp",
	TagDefShiftLeft:         "DefShiftLeft",
	TagShiftLeftOp:          "ShiftLeftOp",
	TagShiftCount:           "ShiftCount",
	TagDefShiftRight:        "DefShiftRight",
	TagShiftRightOp:         "ShiftRightOp",
	TagDefSizeOf:            "DefSizeOf",
	TagSizeOfOp:             "SizeOfOp",
	TagDefStore:             "DefStore",
	TagStoreOp:              "StoreOp",
	TagDefSubtract:          "DefSubtract",
	TagSubtractOp:           "SubtractOp",
	TagDefTimer:             "DefTimer",
	TagTimerOp:              "TimerOp",
	TagDefToBCD:             "DefToBCD",
	TagToBCDOp:              "ToBCDOp",
	TagDefToBuffer:          "DefToBuffer",
	TagToBufferOp:           "ToBufferOp",
	TagDefToDecimalString:   "DefToDecimalString",
	TagToDecimalStringOp:    "ToDecimalStringOp",
	TagDefToHexString:       "DefToHexString",
	TagToHexStringOp:        "ToHexStringOp",
	TagDefToInteger:         "DefToInteger",
	TagToIntegerOp:          "ToIntegerOp",
	TagDefToString:          "DefToString",
	TagLengthArg:            "LengthArg",
	TagToStringOp:           "ToStringOp",
	TagDefWait:              "DefWait",
	TagWaitOp:               "WaitOp",
	TagDefXOr:               "DefXOr",
	TagXOrOp:                "XOrOp",
	TagArgObj:               "ArgObj",
	TagArg0Op:               "Arg0Op",
	TagArg1Op:               "Arg1Op",
	TagArg2Op:               "Arg2Op",
	TagArg3Op:               "Arg3Op",
	TagArg4Op:               "Arg4Op",
	TagArg5Op:               "Arg5Op",
	TagArg6Op:               "Arg6Op",
	TagLocalObj:             "LocalObj",
	TagLocal0Op:             "Local0Op",
	TagLocal1Op:             "Local1Op",
	TagLocal2Op:             "Local2Op",
	TagLocal3Op:             "Local3Op",
	TagLocal4Op:             "Local4Op",
	TagLocal5Op:             "Local5Op",
	TagLocal6Op:             "Local6Op",
	TagLocal7Op:             "Local7Op",
	TagDebugObj:             "DebugObj",
	TagDebugOp:              "DebugOp",
}

// String returns the name of the grammar production the tag stands for.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Unknown"
}
